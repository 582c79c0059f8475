// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nwalign/scoring"
)

// Build fills the penalty table for aligning x against y.
//
// Algorithm:
//  1. Let m = len(x), n = len(y). Allocate a flat (m+1)×(n+1) table P.
//  2. Boundary: P[i][0] = i·gap, P[0][j] = j·gap.
//  3. For i = 1..m, j = 1..n (row-major):
//     diag = P[i-1][j-1] + cost(x[i-1], y[j-1])
//     up   = P[i-1][j]   + gap
//     left = P[i][j-1]   + gap
//     P[i][j] = min(diag, up, left), candidates evaluated in that order.
//
// Empty inputs are legal: an empty x yields a single row, an empty y a single
// column, and two empty sequences the single cell [0].
//
// Errors:
//   - ErrNilCost            — cost is nil.
//   - scoring.ErrInvalidGap — gap is negative, NaN or ±Inf.
//   - ErrInvalidCost        — cost returned a negative, NaN or ±Inf value; the
//     error names the symbol pair and cell of the first offending call.
//
// Complexity: O(m·n) time and memory.
func Build[T comparable](x, y []T, cost scoring.CostFunc[T], gap float64) (*Table, error) {
	if cost == nil {
		return nil, ErrNilCost
	}
	if err := scoring.ValidateGap(gap); err != nil {
		return nil, err
	}

	m, n := len(x), len(y)
	t := newTable(m+1, n+1)

	// Boundary: pure gap cost down column 0 and along row 0.
	for i := 1; i <= m; i++ {
		t.set(i, 0, float64(i)*gap)
	}
	for j := 1; j <= n; j++ {
		t.set(0, j, float64(j)*gap)
	}

	for i := 1; i <= m; i++ {
		xi := x[i-1]
		for j := 1; j <= n; j++ {
			yj := y[j-1]
			c := cost(xi, yj)
			if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("cost(%v, %v)=%g at (%d,%d): %w", xi, yj, c, i, j, ErrInvalidCost)
			}
			t.set(i, j, min3(
				t.at(i-1, j-1)+c,
				t.at(i-1, j)+gap,
				t.at(i, j-1)+gap,
			))
		}
	}

	return t, nil
}

// min3 returns the smallest of diag, up, left. Ties keep the earlier argument.
func min3(diag, up, left float64) float64 {
	best := diag
	if up < best {
		best = up
	}
	if left < best {
		best = left
	}

	return best
}
