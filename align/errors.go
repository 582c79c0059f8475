// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

// Sentinel errors. All messages carry the "align:" prefix; match with errors.Is.
// Gap validation reuses scoring.ErrInvalidGap.
var (
	// ErrNilCost indicates a nil cost model was supplied.
	ErrNilCost = errors.New("align: cost function is nil")

	// ErrInvalidCost indicates the cost model returned a negative, NaN or ±Inf
	// penalty for a symbol pair (e.g. a pair it does not define).
	ErrInvalidCost = errors.New("align: cost must be finite and non-negative")

	// ErrNilTable indicates Traceback received a nil table.
	ErrNilTable = errors.New("align: table is nil")

	// ErrDimensionMismatch indicates the table shape is not (len(x)+1)×(len(y)+1).
	ErrDimensionMismatch = errors.New("align: table shape does not match sequences")

	// ErrInconsistentTable indicates the walk reached a cell no rule can leave.
	// Only reachable when the table was not built from the same inputs.
	ErrInconsistentTable = errors.New("align: table inconsistent with sequences or costs")

	// ErrOutOfRange indicates a table index outside [0,Rows)×[0,Cols).
	ErrOutOfRange = errors.New("align: index out of range")
)

// tableErrorf attaches method context and coordinates to a sentinel.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
