// SPDX-License-Identifier: MIT

// Package cli is the cobra command tree of the nwalign binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/nwalign/internal/batch"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/internal/logging"
	"github.com/katalvlaran/nwalign/internal/render"
	"github.com/katalvlaran/nwalign/scoring"
)

// Version is reported by --version.
var Version = "0.1.0"

const serviceName = "nwalign"

// app carries the state resolved once per invocation by the root pre-run hook.
// Until then logger is the fallback text logger on errOut.
type app struct {
	out, errOut io.Writer
	cfgFile     string

	cfg    config.Config
	logger *slog.Logger
	cost   scoring.CostFunc[rune]
}

// flagKeys maps flag names onto viper keys where the two differ.
var flagKeys = map[string]string{
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, logger: logging.Fallback(errOut, serviceName)}
}

// command builds the command tree writing reports to a.out and logs to a.errOut.
func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "nwalign",
		Short: "Global alignment of sequence pairs (Needleman-Wunsch, linear gap penalty)",
		Long: `Align pairs of strings end-to-end, minimising the total penalty of
mismatches and gaps. Alignments print as two rows where "-" marks a gap.

Settings come from flags, NWALIGN_* environment variables and an optional
YAML config file, in that order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.Float64(config.KeyGap, scoring.DefaultGapPenalty, "linear gap penalty")
	pf.Float64(config.KeyMatch, scoring.DefaultMatchCost, "cost of aligning equal symbols")
	pf.Float64(config.KeyMismatch, scoring.DefaultMismatchCost, "cost of aligning different symbols")
	pf.String(config.KeyMatrix, "", "YAML substitution matrix; overrides --match/--mismatch")
	pf.String(config.KeyColor, config.ColorAuto, "colour output: auto|always|never")
	pf.String(config.KeyFormat, config.FormatText, "report format: text|json")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("log-format", logging.FormatText, "log format: text|json")

	root.AddCommand(
		newAlignCommand(a),
		newDemoCommand(a),
		newBatchCommand(a),
	)

	return root
}

// Run executes the command tree with args. A failure is logged through the
// configured logger, or the fallback one if configuration did not load, and
// then returned.
func Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := newApp(out, errOut)
	root := a.command()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Error("nwalign failed", "error", err)
	}

	return err
}

// Execute runs the command tree against the process arguments and streams.
// An interrupt cancels in-flight batches.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// setup resolves the configuration, logger and cost model for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err = bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if a.logger, err = logging.New(a.errOut, cfg.LoggingConfig()); err != nil {
		a.logger = logging.Fallback(a.errOut, serviceName)
		return err
	}
	cost, err := cfg.CostFunc()
	if err != nil {
		return err
	}

	a.cfg, a.cost = cfg, cost
	a.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"config_file", v.ConfigFileUsed(),
		"gap", cfg.Gap,
		"matrix", cfg.Matrix,
		"format", cfg.Format)

	return nil
}

// bindFlags binds every flag of fs (local and inherited) except --config to viper.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "help" || f.Name == "version" {
			return
		}
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind --%s: %w", f.Name, bindErr)
		}
	})

	return err
}

// report writes entries in the configured format.
func (a *app) report(entries []render.Entry) error {
	r := render.New(a.out, a.cfg.Color)
	if a.cfg.Format == config.FormatJSON {
		return r.JSON(entries)
	}

	return r.Text(entries)
}

// entries converts batch outcomes for rendering.
func entries(outcomes []batch.Outcome) []render.Entry {
	out := make([]render.Entry, len(outcomes))
	for i, o := range outcomes {
		out[i] = render.Entry{X: o.Pair.X, Y: o.Pair.Y, Alignment: o.Alignment}
	}

	return out
}
