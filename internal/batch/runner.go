// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/internal/logging"
	"github.com/katalvlaran/nwalign/scoring"
)

// Outcome is the alignment of one Pair.
type Outcome struct {
	Pair      Pair
	Alignment align.StringResult
}

// Runner aligns pairs with a shared cost model and gap penalty. Cost must be
// safe for concurrent calls; every model in package scoring is.
type Runner struct {
	Cost    scoring.CostFunc[rune]
	Gap     float64
	Workers int          // max pairs in flight; values < 1 mean 1
	Logger  *slog.Logger // nil discards
}

// Run aligns every pair and returns the outcomes in input order. The first
// failing pair cancels the remaining work and its error is returned. Each pair
// builds and traces its own table on a single goroutine.
func (r Runner) Run(ctx context.Context, pairs []Pair) ([]Outcome, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	workers := max(r.Workers, 1)

	out := make([]Outcome, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	logger.Info("batch started", "pairs", len(pairs), "workers", workers, "gap", r.Gap)
	for i, p := range pairs {
		i, p := i, p // per-iteration copies (go directive is < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := align.Strings(p.X, p.Y, r.Cost, r.Gap)
			if err != nil {
				return fmt.Errorf("pair %d (%q, %q): %w", i, p.X, p.Y, err)
			}
			out[i] = Outcome{Pair: p, Alignment: a}
			logger.Debug("pair aligned",
				"index", i,
				"matches", a.Matches,
				"mismatches", a.Mismatches,
				"gaps", a.Gaps,
				"penalty", a.Penalty)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("batch failed", "error", err)
		return nil, err
	}
	logger.Info("batch finished", "pairs", len(pairs))

	return out, nil
}
