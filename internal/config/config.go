// SPDX-License-Identifier: MIT

// Package config holds the CLI settings, unmarshalled from viper. Sources in
// precedence order: command-line flags, NWALIGN_* environment variables, an
// optional YAML config file, then the defaults registered by SetDefaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/nwalign/internal/logging"
	"github.com/katalvlaran/nwalign/scoring"
)

// ErrInvalid indicates a setting outside its accepted range.
var ErrInvalid = errors.New("config: invalid setting")

// EnvPrefix is prepended to every environment override, e.g. NWALIGN_GAP.
const EnvPrefix = "NWALIGN"

// Viper keys.
const (
	KeyGap       = "gap"
	KeyMatch     = "match"
	KeyMismatch  = "mismatch"
	KeyMatrix    = "matrix"
	KeyColor     = "color"
	KeyFormat    = "format"
	KeyWorkers   = "workers"
	KeyTable     = "table"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LogConfig is the "log" section.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct.
type Config struct {
	// linear gap penalty, shared by build and traceback
	Gap float64 `mapstructure:"gap"`

	// cost of aligning equal / different symbols when no matrix is given
	Match    float64 `mapstructure:"match"`
	Mismatch float64 `mapstructure:"mismatch"`

	// optional path to a YAML substitution matrix; overrides match/mismatch
	Matrix string `mapstructure:"matrix"`

	Color   string    `mapstructure:"color"`
	Format  string    `mapstructure:"format"`
	Workers int       `mapstructure:"workers"`
	Table   bool      `mapstructure:"table"`
	Log     LogConfig `mapstructure:"log"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGap, scoring.DefaultGapPenalty)
	v.SetDefault(KeyMatch, scoring.DefaultMatchCost)
	v.SetDefault(KeyMismatch, scoring.DefaultMismatchCost)
	v.SetDefault(KeyMatrix, "")
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyTable, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
}

// NewViper returns a viper instance with defaults and environment overrides
// wired. If file is non-empty it is read as the config file.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field and returns ErrInvalid wrapped with the first
// offending key.
func (c Config) Validate() error {
	if err := scoring.ValidateGap(c.Gap); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyGap, err, ErrInvalid)
	}
	if !finiteNonNegative(c.Match) {
		return invalid(KeyMatch, c.Match)
	}
	if !finiteNonNegative(c.Mismatch) {
		return invalid(KeyMismatch, c.Mismatch)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid(KeyColor, c.Color)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return invalid(KeyFormat, c.Format)
	}
	if c.Workers < 1 {
		return invalid(KeyWorkers, c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid(KeyLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return invalid(KeyLogFormat, c.Log.Format)
	}

	return nil
}

// CostFunc resolves the configured cost model: the substitution matrix when
// Matrix is set, otherwise the match/mismatch constants.
func (c Config) CostFunc() (scoring.CostFunc[rune], error) {
	if c.Matrix != "" {
		m, err := scoring.LoadMatrix(c.Matrix)
		if err != nil {
			return nil, err
		}

		return m.Cost, nil
	}
	if c.Match == scoring.DefaultMatchCost && c.Mismatch == scoring.DefaultMismatchCost {
		return scoring.Unit[rune], nil
	}
	if !finiteNonNegative(c.Match) || !finiteNonNegative(c.Mismatch) {
		return nil, fmt.Errorf("match=%g mismatch=%g: %w", c.Match, c.Mismatch, ErrInvalid)
	}

	return scoring.Constant[rune](c.Match, c.Mismatch), nil
}

// LoggingConfig adapts the "log" section for the logging package.
func (c Config) LoggingConfig() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Service: "nwalign"}
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func invalid(key string, value any) error {
	return fmt.Errorf("%s=%v: %w", key, value, ErrInvalid)
}
