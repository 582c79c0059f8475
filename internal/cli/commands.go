// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/internal/batch"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/internal/render"
)

func newAlignCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align X Y",
		Short: "Align one pair of strings",
		Example: `  nwalign align CRANE RAIN
  nwalign align --table GATTACA GCATGCU
  nwalign align --gap 1.5 --matrix dna.yaml GATTACA GACTATA`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, y := args[0], args[1]
			full, t, err := align.Align([]rune(x), []rune(y), a.cost, a.cfg.Gap)
			if err != nil {
				return err
			}
			res := align.NewStringResult(full)
			a.logger.Debug("pair aligned", "x", x, "y", y, "penalty", res.Penalty)

			if err = a.report([]render.Entry{{X: x, Y: y, Alignment: res}}); err != nil {
				return err
			}
			if !a.cfg.Table || a.cfg.Format == config.FormatJSON {
				return nil
			}

			return render.New(a.out, a.cfg.Color).Table(x, y, t)
		},
	}
	cmd.Flags().Bool(config.KeyTable, false, "also print the penalty table (text format only)")

	return cmd
}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Align the built-in reference word pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := batch.Runner{Cost: a.cost, Gap: a.cfg.Gap, Workers: a.cfg.Workers, Logger: a.logger}
			outcomes, err := r.Run(cmd.Context(), batch.DemoPairs())
			if err != nil {
				return err
			}

			return a.report(entries(outcomes))
		},
	}
}

func newBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Align every pair listed in a YAML file",
		Long: `Align the pairs of a YAML file in parallel. The file lists two-element
sequences under "pairs":

  pairs:
    - [CRANE, RAIN]
    - [GATTACA, GCATGCU]

Reports keep the file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := batch.LoadPairs(args[0])
			if err != nil {
				return err
			}
			r := batch.Runner{Cost: a.cost, Gap: a.cfg.Gap, Workers: a.cfg.Workers, Logger: a.logger}
			outcomes, err := r.Run(cmd.Context(), pairs)
			if err != nil {
				return err
			}

			return a.report(entries(outcomes))
		},
	}
	cmd.Flags().Int(config.KeyWorkers, 0, "pairs aligned in parallel (default GOMAXPROCS)")

	return cmd
}
