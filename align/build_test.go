// SPDX-License-Identifier: MIT

package align_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rows dumps a table into nested slices for whole-table comparisons.
func rows(t *testing.T, tbl *align.Table) [][]float64 {
	t.Helper()
	out := make([][]float64, tbl.Rows())
	for i := range out {
		r, err := tbl.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// TestBuild_CraneRain pins the full table for the reference CRANE×RAIN pair.
func TestBuild_CraneRain(t *testing.T) {
	tbl, err := align.Build([]rune("CRANE"), []rune("RAIN"), scoring.Unit[rune], scoring.DefaultGapPenalty)
	require.NoError(t, err)

	want := [][]float64{
		{0, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 1, 2, 3, 4},
		{3, 2, 1, 2, 3},
		{4, 3, 2, 3, 2},
		{5, 4, 3, 4, 3},
	}
	assert.Equal(t, want, rows(t, tbl))
}

// TestBuild_Boundaries checks P[i][0] = i·gap and P[0][j] = j·gap for a non-unit gap.
func TestBuild_Boundaries(t *testing.T) {
	const gap = 2.5
	tbl, err := align.Build([]rune("GATTACA"), []rune("GCA"), scoring.Unit[rune], gap)
	require.NoError(t, err)

	for i := 0; i < tbl.Rows(); i++ {
		v, err := tbl.At(i, 0)
		require.NoError(t, err)
		assert.Equal(t, float64(i)*gap, v, "P[%d][0]", i)
	}
	for j := 0; j < tbl.Cols(); j++ {
		v, err := tbl.At(0, j)
		require.NoError(t, err)
		assert.Equal(t, float64(j)*gap, v, "P[0][%d]", j)
	}
}

// TestBuild_Recurrence re-derives every interior cell from its three predecessors.
func TestBuild_Recurrence(t *testing.T) {
	x, y := []rune("INTENTION"), []rune("EXECUTION")
	cost := scoring.Constant[rune](0, 1.5)
	const gap = 1.0

	tbl, err := align.Build(x, y, cost, gap)
	require.NoError(t, err)
	p := rows(t, tbl)

	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			want := math.Min(p[i-1][j-1]+cost(x[i-1], y[j-1]), math.Min(p[i-1][j]+gap, p[i][j-1]+gap))
			assert.Equal(t, want, p[i][j], "P[%d][%d]", i, j)
		}
	}
}

// TestBuild_EmptyInputs covers the degenerate shapes.
func TestBuild_EmptyInputs(t *testing.T) {
	tests := []struct {
		name       string
		x, y       string
		rows, cols int
		penalty    float64
	}{
		{"both empty", "", "", 1, 1, 0},
		{"empty x", "", "ABC", 1, 4, 3},
		{"empty y", "ABC", "", 4, 1, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := align.Build([]rune(tc.x), []rune(tc.y), scoring.Unit[rune], 1)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, tbl.Rows())
			assert.Equal(t, tc.cols, tbl.Cols())
			assert.Equal(t, tc.penalty, tbl.Penalty())
		})
	}

	// nil slices behave like empty ones
	tbl, err := align.Build[rune](nil, nil, scoring.Unit[rune], 1)
	require.NoError(t, err)
	assert.Equal(t, "[0]\n", tbl.String())
}

// TestBuild_ZeroGap allows a free gap; every pair then aligns at no cost.
func TestBuild_ZeroGap(t *testing.T) {
	tbl, err := align.Build([]rune("AAAA"), []rune("CC"), scoring.Unit[rune], 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tbl.Penalty())
}

// TestBuild_InvalidConfig covers the configuration errors.
func TestBuild_InvalidConfig(t *testing.T) {
	x, y := []rune("AC"), []rune("AG")

	_, err := align.Build(x, y, nil, 1)
	assert.ErrorIs(t, err, align.ErrNilCost)

	_, err = align.Build(x, y, scoring.Unit[rune], -1)
	assert.ErrorIs(t, err, scoring.ErrInvalidGap)

	_, err = align.Build(x, y, scoring.Unit[rune], math.NaN())
	assert.ErrorIs(t, err, scoring.ErrInvalidGap)

	negative := func(a, b rune) float64 { return -1 }
	_, err = align.Build(x, y, negative, 1)
	assert.ErrorIs(t, err, align.ErrInvalidCost)
}

// TestBuild_UndefinedPair verifies that a matrix missing a symbol fails at first use.
func TestBuild_UndefinedPair(t *testing.T) {
	m, err := scoring.NewMatrix("AC", [][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)

	_, err = align.Build([]rune("ACN"), []rune("CA"), m.Cost, 1)
	require.ErrorIs(t, err, align.ErrInvalidCost)
	assert.Contains(t, err.Error(), "(3,1)", "error names the first offending cell")

	_, err = align.Build([]rune("CA"), []rune("AC"), m.Cost, 1)
	assert.NoError(t, err, "pairs inside the alphabet are fine")
}

// TestBuild_CostCalledInOrder records that cost always receives (x[i], y[j]).
func TestBuild_CostCalledInOrder(t *testing.T) {
	x, y := []rune("ab"), []rune("XYZ")
	var calls [][2]rune
	spy := func(a, b rune) float64 {
		calls = append(calls, [2]rune{a, b})
		return 1
	}

	_, err := align.Build(x, y, spy, 1)
	require.NoError(t, err)

	want := [][2]rune{
		{'a', 'X'}, {'a', 'Y'}, {'a', 'Z'},
		{'b', 'X'}, {'b', 'Y'}, {'b', 'Z'},
	}
	assert.Equal(t, want, calls, "row-major fill, first argument from x")
}
