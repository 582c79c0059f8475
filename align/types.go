// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/nwalign/scoring"

// GapRune is the gap marker used by Strings.
const GapRune = '-'

// Op classifies one alignment column (one Traceback step).
type Op int

const (
	// OpMatch is a diagonal step over two equal symbols.
	OpMatch Op = iota

	// OpMismatch is a diagonal step over two different symbols.
	OpMismatch

	// OpGapY is an up step: X[i-1] is aligned against a gap in Y.
	OpGapY

	// OpGapX is a left step: Y[j-1] is aligned against a gap in X.
	OpGapX
)

// String returns a short lowercase name for the op.
func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpMismatch:
		return "mismatch"
	case OpGapY:
		return "gap-y"
	case OpGapX:
		return "gap-x"
	default:
		return "unknown"
	}
}

// IsGap reports whether the column holds a gap on either side.
func (o Op) IsGap() bool { return o == OpGapY || o == OpGapX }

// Column is one aligned position. X is the zero value when Op == OpGapX,
// Y is the zero value when Op == OpGapY.
type Column[T comparable] struct {
	Op Op
	X  T
	Y  T
}

// Result is one optimal global alignment, columns in left-to-right order.
//
// Invariants:
//   - Matches + Mismatches + Gaps == len(Columns)
//   - Penalty == Table.Penalty() of the table it was traced from.
type Result[T comparable] struct {
	Columns    []Column[T]
	Matches    int
	Mismatches int
	Gaps       int
	Penalty    float64
}

// Len returns the number of alignment columns.
func (r Result[T]) Len() int { return len(r.Columns) }

// AlignedX returns the first sequence with gap placed at every OpGapX column.
func (r Result[T]) AlignedX(gap T) []T {
	out := make([]T, len(r.Columns))
	for k, col := range r.Columns {
		if col.Op == OpGapX {
			out[k] = gap
			continue
		}
		out[k] = col.X
	}

	return out
}

// AlignedY returns the second sequence with gap placed at every OpGapY column.
func (r Result[T]) AlignedY(gap T) []T {
	out := make([]T, len(r.Columns))
	for k, col := range r.Columns {
		if col.Op == OpGapY {
			out[k] = gap
			continue
		}
		out[k] = col.Y
	}

	return out
}

// Rescore recomputes the total penalty from the columns: cost over every
// non-gap column plus gap per gap column. For a Result produced by Traceback
// with the same cost and gap this equals Penalty.
// Complexity: O(Len).
func (r Result[T]) Rescore(cost scoring.CostFunc[T], gap float64) float64 {
	var total float64
	for _, col := range r.Columns {
		if col.Op.IsGap() {
			total += gap
			continue
		}
		total += cost(col.X, col.Y)
	}

	return total
}

// StringResult is the string form of a Result[rune], gaps rendered as GapRune.
type StringResult struct {
	X          string // aligned first sequence
	Y          string // aligned second sequence
	Ops        []Op   // per-column classification, len == rune count of X
	Matches    int
	Mismatches int
	Gaps       int
	Penalty    float64
}
