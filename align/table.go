// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// Table is the penalty table P of one alignment problem.
//   - r,c are (len(x)+1) and (len(y)+1); both ≥ 1.
//   - data is a flat row-major buffer, P[i][j] lives at i*c + j.
//
// A Table is written only by Build and is read-only afterwards. The zero
// value is an empty 0×0 table: it fails every index and Traceback rejects it.
type Table struct {
	r, c int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table)(nil)

// newTable allocates a zeroed rows×cols table. Callers guarantee rows, cols ≥ 1.
func newTable(rows, cols int) *Table {
	return &Table{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns len(x)+1.
func (t *Table) Rows() int { return t.r }

// Cols returns len(y)+1.
func (t *Table) Cols() int { return t.c }

// At returns P[row][col], or ErrOutOfRange wrapped with the coordinates.
// Complexity: O(1).
func (t *Table) At(row, col int) (float64, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, tableErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return t.data[row*t.c+col], nil
}

// Row returns a copy of row i.
// Complexity: O(Cols).
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.r {
		return nil, tableErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out, nil
}

// Penalty returns P[m][n], the optimal total alignment penalty, or 0 for a
// zero-value Table.
func (t *Table) Penalty() float64 {
	if len(t.data) == 0 {
		return 0
	}

	return t.data[len(t.data)-1]
}

// at is the unchecked accessor used on the hot paths of Build and Traceback.
func (t *Table) at(i, j int) float64 {
	return t.data[i*t.c+j]
}

// set is the unchecked writer used only by Build.
func (t *Table) set(i, j int, v float64) {
	t.data[i*t.c+j] = v
}

// String renders the table one bracketed row per line, e.g. "[0, 1, 2]\n".
// Complexity: O(r*c).
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		sb.WriteString("[")
		for j := 0; j < t.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", t.data[i*t.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
