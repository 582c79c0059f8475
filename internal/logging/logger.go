// SPDX-License-Identifier: MIT

// Package logging builds the structured slog logger used by the nwalign CLI.
// Logs go to stderr so that alignment reports on stdout stay pipeable.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownLevel indicates a level name outside debug|info|warn|error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat indicates a format name outside text|json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level and handler. A zero Config means info level, text format.
type Config struct {
	Level   string // debug | info | warn | error
	Format  string // text | json
	Service string // added as the "service" attribute when non-empty
}

// ParseLevel maps a level name (case-insensitive) to slog.Level.
// The empty string maps to info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}
}

// New returns a logger writing to w according to cfg.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, ErrUnknownFormat)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger, nil
}

// Fallback returns the info-level text logger on w used before configuration
// is loaded, tagged with service when non-empty.
func Fallback(w io.Writer, service string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, nil))
	if service != "" {
		logger = logger.With("service", service)
	}

	return logger
}

// Discard returns a logger that drops every record; used by tests and as the
// fallback before configuration is loaded.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
