// SPDX-License-Identifier: MIT

package align

import (
	"fmt"

	"github.com/katalvlaran/nwalign/scoring"
)

// Traceback reconstructs one optimal alignment from a table produced by Build.
//
// Precondition: t was built by Build(x, y, cost, gap) with exactly these
// arguments. Cell contents are not re-validated; a foreign table gives an
// undefined (but memory-safe) result or ErrInconsistentTable.
//
// Walk from (m,n) to (0,0). Inside the table (i>0, j>0) the first rule whose
// equality holds wins:
//  1. diagonal — P[i][j] == P[i-1][j-1] + cost(x[i-1], y[j-1]):
//     emit (x[i-1], y[j-1]) as OpMatch or OpMismatch; i--, j--.
//  2. up       — P[i][j] == P[i-1][j] + gap:
//     emit (x[i-1], gap) as OpGapY; i--.
//  3. left     — P[i][j] == P[i][j-1] + gap:
//     emit (gap, y[j-1]) as OpGapX; j--.
//
// On the boundary there is a single move: up along column 0, left along row 0.
// Boundary cells are i·gap and are never compared, since (i-1)·gap + gap need
// not round to the same float.
//
// Errors:
//   - ErrNilTable, ErrNilCost.
//   - ErrDimensionMismatch if t is not (len(x)+1)×(len(y)+1).
//   - ErrInconsistentTable if an inner cell satisfies none of the three rules.
//
// Complexity: O(m+n) steps, one cost call per inner cell visited.
func Traceback[T comparable](t *Table, x, y []T, cost scoring.CostFunc[T], gap float64) (Result[T], error) {
	if t == nil {
		return Result[T]{}, ErrNilTable
	}
	if cost == nil {
		return Result[T]{}, ErrNilCost
	}
	m, n := len(x), len(y)
	if t.r != m+1 || t.c != n+1 {
		return Result[T]{}, fmt.Errorf("table %d×%d, sequences %d and %d: %w", t.r, t.c, m, n, ErrDimensionMismatch)
	}

	res := Result[T]{
		Columns: make([]Column[T], 0, m+n),
		Penalty: t.at(m, n),
	}

	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case j == 0:
			res.Columns = append(res.Columns, Column[T]{Op: OpGapY, X: x[i-1]})
			res.Gaps++
			i--
			continue
		case i == 0:
			res.Columns = append(res.Columns, Column[T]{Op: OpGapX, Y: y[j-1]})
			res.Gaps++
			j--
			continue
		}

		cur := t.at(i, j)
		// Capture the consumed pair before the cursor moves.
		xs, ys := x[i-1], y[j-1]
		switch {
		case cur == t.at(i-1, j-1)+cost(xs, ys):
			op := OpMismatch
			if xs == ys {
				op = OpMatch
				res.Matches++
			} else {
				res.Mismatches++
			}
			res.Columns = append(res.Columns, Column[T]{Op: op, X: xs, Y: ys})
			i--
			j--
		case cur == t.at(i-1, j)+gap:
			res.Columns = append(res.Columns, Column[T]{Op: OpGapY, X: xs})
			res.Gaps++
			i--
		case cur == t.at(i, j-1)+gap:
			res.Columns = append(res.Columns, Column[T]{Op: OpGapX, Y: ys})
			res.Gaps++
			j--
		default:
			return Result[T]{}, fmt.Errorf("stuck at (%d,%d): %w", i, j, ErrInconsistentTable)
		}
	}

	// Steps were collected end-to-start; reverse in place.
	for l, r := 0, len(res.Columns)-1; l < r; l, r = l+1, r-1 {
		res.Columns[l], res.Columns[r] = res.Columns[r], res.Columns[l]
	}

	return res, nil
}

// Align runs Build followed by Traceback and returns both the alignment and
// the table it was traced from.
func Align[T comparable](x, y []T, cost scoring.CostFunc[T], gap float64) (Result[T], *Table, error) {
	t, err := Build(x, y, cost, gap)
	if err != nil {
		return Result[T]{}, nil, err
	}
	res, err := Traceback(t, x, y, cost, gap)
	if err != nil {
		return Result[T]{}, nil, err
	}

	return res, t, nil
}

// Strings aligns two strings rune by rune and renders gaps as GapRune.
func Strings(x, y string, cost scoring.CostFunc[rune], gap float64) (StringResult, error) {
	res, _, err := Align([]rune(x), []rune(y), cost, gap)
	if err != nil {
		return StringResult{}, err
	}

	return NewStringResult(res), nil
}

// NewStringResult renders a rune alignment as strings, gaps as GapRune.
// Use it with Align when the table is needed as well.
func NewStringResult(res Result[rune]) StringResult {
	ops := make([]Op, len(res.Columns))
	for k, col := range res.Columns {
		ops[k] = col.Op
	}

	return StringResult{
		X:          string(res.AlignedX(GapRune)),
		Y:          string(res.AlignedY(GapRune)),
		Ops:        ops,
		Matches:    res.Matches,
		Mismatches: res.Mismatches,
		Gaps:       res.Gaps,
		Penalty:    res.Penalty,
	}
}
