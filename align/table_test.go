// SPDX-License-Identifier: MIT

package align_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/scoring"
	"github.com/stretchr/testify/require"
)

// TestTable_Accessors checks Rows/Cols/At/Row/Penalty on the CRANE×RAIN table.
func TestTable_Accessors(t *testing.T) {
	tbl, err := align.Build([]rune("CRANE"), []rune("RAIN"), scoring.Unit[rune], scoring.DefaultGapPenalty)
	require.NoError(t, err)

	require.Equal(t, 6, tbl.Rows()) // len("CRANE")+1
	require.Equal(t, 5, tbl.Cols()) // len("RAIN")+1

	v, err := tbl.At(3, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // "CRA" vs "RA": one gap

	row, err := tbl.Row(5)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 4, 3, 4, 3}, row)

	require.Equal(t, 3.0, tbl.Penalty())
}

// TestTable_RowIsCopy ensures Row does not expose the backing buffer.
func TestTable_RowIsCopy(t *testing.T) {
	tbl, err := align.Build([]rune("AB"), []rune("AB"), scoring.Unit[rune], 1)
	require.NoError(t, err)

	row, err := tbl.Row(0)
	require.NoError(t, err)
	row[1] = 99

	v, err := tbl.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "mutating a Row copy must not alter the table")
}

// TestTable_OutOfRange ensures accessors return ErrOutOfRange instead of panicking.
func TestTable_OutOfRange(t *testing.T) {
	tbl, err := align.Build([]rune("A"), []rune("B"), scoring.Unit[rune], 1)
	require.NoError(t, err)

	_, err = tbl.At(-1, 0)
	require.ErrorIs(t, err, align.ErrOutOfRange)
	_, err = tbl.At(0, 2)
	require.ErrorIs(t, err, align.ErrOutOfRange)
	_, err = tbl.At(2, 0)
	require.ErrorIs(t, err, align.ErrOutOfRange)
	_, err = tbl.Row(2)
	require.ErrorIs(t, err, align.ErrOutOfRange)
}

// TestTable_String pins the bracketed row rendering.
func TestTable_String(t *testing.T) {
	tbl, err := align.Build([]rune("AC"), []rune("CA"), scoring.Unit[rune], 1)
	require.NoError(t, err)
	require.Equal(t, "[0, 1, 2]\n[1, 2, 1]\n[2, 1, 2]\n", tbl.String())
}

// TestTable_ZeroValue: a Table not produced by Build is empty and unusable,
// yet no accessor panics.
func TestTable_ZeroValue(t *testing.T) {
	var tbl align.Table

	require.Zero(t, tbl.Rows())
	require.Zero(t, tbl.Cols())
	require.Zero(t, tbl.Penalty())
	require.Empty(t, tbl.String())

	_, err := tbl.At(0, 0)
	require.ErrorIs(t, err, align.ErrOutOfRange)
	_, err = tbl.Row(0)
	require.ErrorIs(t, err, align.ErrOutOfRange)

	_, err = align.Traceback(new(align.Table), []rune{}, []rune{}, scoring.Unit[rune], 1)
	require.ErrorIs(t, err, align.ErrDimensionMismatch)
}
