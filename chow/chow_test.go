package chow

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-Woroniuk/chowtest/dataset"
)

// workedExample builds the 15-row reference dataset: columns A, B, C
// holding the pattern [11 10 9], [11 15 9], [12 14 16] repeated five
// times. X is column B and y is column A.
func workedExample(t *testing.T) (*dataset.Table, *dataset.Column) {
	t.Helper()

	pattern := [][]float64{{11, 10, 9}, {11, 15, 9}, {12, 14, 16}}
	var a, b []float64
	for i := 0; i < 5; i++ {
		for _, row := range pattern {
			a = append(a, row[0])
			b = append(b, row[1])
		}
	}

	x, err := dataset.NewTable(dataset.NewColumn("B", b))
	require.NoError(t, err)
	return x, dataset.NewColumn("A", a)
}

// breakData builds 40 observations whose slope flips at row 20.
func breakData() (*dataset.Table, *dataset.Column) {
	n := 40
	xv := make([]float64, n)
	yv := make([]float64, n)
	for i := 0; i < n; i++ {
		xv[i] = float64(i)
		noise := float64(i%5-2) / 10
		if i < 20 {
			yv[i] = 2 + 0.5*xv[i] + noise
		} else {
			yv[i] = 30 - 1.5*xv[i] + noise
		}
	}
	x := dataset.NewColumn("x", xv).Table()
	return x, dataset.NewColumn("y", yv)
}

// stableData builds 40 observations from a single linear relationship.
func stableData() (*dataset.Table, *dataset.Column) {
	n := 40
	xv := make([]float64, n)
	yv := make([]float64, n)
	for i := 0; i < n; i++ {
		xv[i] = float64(i)
		yv[i] = 3 + 2*xv[i] + float64(i%5-2)/10
	}
	x := dataset.NewColumn("x", xv).Table()
	return x, dataset.NewColumn("y", yv)
}

func TestWorkedExample(t *testing.T) {
	x, y := workedExample(t)

	result, err := Test(x, y, 8, 9, Significance1Pct, nil)
	require.NoError(t, err)

	// The pattern repeats identically in both periods, so splitting buys
	// nothing: RSS_pooled equals RSS1 + RSS2 and the statistic collapses.
	assert.GreaterOrEqual(t, result.Statistic, 0.0)
	assert.InDelta(t, 0.0, result.Statistic, 1e-9)
	assert.InDelta(t, 1.0, result.PValue, 1e-9)
	assert.Equal(t, VerdictFailToReject, result.Verdict)

	assert.Equal(t, 2, result.K)
	assert.Equal(t, 9, result.N1)
	assert.Equal(t, 6, result.N2)
	assert.Equal(t, 11, result.DoF)

	assert.InDelta(t, 125.0/42.0, result.RSSPooled, 1e-9)
	assert.InDelta(t, 25.0/14.0, result.RSS1, 1e-9)
	assert.InDelta(t, 25.0/21.0, result.RSS2, 1e-9)
}

func TestDeterminism(t *testing.T) {
	x, y := breakData()

	r1, err := Test(x, y, 19, 20, Significance5Pct, nil)
	require.NoError(t, err)
	r2, err := Test(x, y, 19, 20, Significance5Pct, nil)
	require.NoError(t, err)

	// Bit-identical, not merely close
	assert.Equal(t, r1.Statistic, r2.Statistic)
	assert.Equal(t, r1.PValue, r2.PValue)
	assert.Equal(t, r1, r2)
}

func TestPoolingInequality(t *testing.T) {
	x, y := breakData()

	for _, split := range []int{5, 10, 19, 25, 33} {
		result, err := Test(x, y, split, split+1, Significance5Pct, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.RSSPooled+1e-9, result.RSS1+result.RSS2,
			"split at %d", split)
	}
}

func TestBreakDetected(t *testing.T) {
	x, y := breakData()

	result, err := Test(x, y, 19, 20, Significance1Pct, nil)
	require.NoError(t, err)

	assert.Equal(t, VerdictReject, result.Verdict)
	assert.Less(t, result.PValue, 0.01)
	assert.Greater(t, result.Statistic, 1.0)
}

func TestNoBreakOnStableData(t *testing.T) {
	x, y := stableData()

	result, err := Test(x, y, 19, 20, Significance10Pct, nil)
	require.NoError(t, err)

	assert.Equal(t, VerdictFailToReject, result.Verdict)
	assert.Greater(t, result.PValue, 0.10)
}

func TestDegenerateSplits(t *testing.T) {
	tests := []struct {
		name       string
		x          []float64
		y          []float64
		lastIndex  int
		firstIndex int
	}{
		// k=2 per period, so two observations per side leave N1+N2-2k = 0
		{"zero degrees of freedom", []float64{1, 2, 3, 4}, []float64{1, 3, 2, 5}, 1, 2},
		// one observation per side leaves negative degrees of freedom
		{"negative degrees of freedom", []float64{1, 2, 3}, []float64{4, 2, 7}, 0, 2},
		// an all-zero response fits exactly on both sides
		{"zero split RSS", []float64{1, 2, 3, 4, 5, 6, 7, 8}, make([]float64, 8), 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := dataset.NewColumn("x", tt.x).Table()
			y := dataset.NewColumn("y", tt.y)

			result, err := Test(x, y, tt.lastIndex, tt.firstIndex, Significance5Pct, nil)
			require.NoError(t, err)

			assert.Equal(t, VerdictDegenerate, result.Verdict)
			assert.Equal(t, 0.0, result.Statistic)
			assert.Equal(t, 1.0, result.PValue)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	x, y := workedExample(t)
	short := dataset.NewColumn("A", []float64{1, 2, 3})
	withNaN := dataset.NewColumn("A", append([]float64{math.NaN()}, y.Values[1:]...))
	infX, err := dataset.NewTable(dataset.NewColumn("B", append([]float64{math.Inf(1)}, x.Columns[0].Values[1:]...)))
	require.NoError(t, err)

	tests := []struct {
		name       string
		x          *dataset.Table
		y          *dataset.Column
		lastIndex  int
		firstIndex int
		level      Significance
		want       error
	}{
		{"nil x", nil, y, 8, 9, Significance1Pct, dataset.ErrNoColumns},
		{"no columns", &dataset.Table{}, y, 8, 9, Significance1Pct, dataset.ErrNoColumns},
		{"nil y", x, nil, 8, 9, Significance1Pct, dataset.ErrEmptyColumn},
		{"empty y", x, dataset.NewColumn("A", nil), 8, 9, Significance1Pct, dataset.ErrEmptyColumn},
		{"misaligned y", x, short, 1, 2, Significance1Pct, dataset.ErrLengthMismatch},
		{"nan in y", x, withNaN, 8, 9, Significance1Pct, dataset.ErrNonFinite},
		{"inf in x", infX, y, 8, 9, Significance1Pct, dataset.ErrNonFinite},
		{"lastIndex negative", x, y, -1, 9, Significance1Pct, dataset.ErrIndexRange},
		{"lastIndex too large", x, y, 15, 9, Significance1Pct, dataset.ErrIndexRange},
		{"firstIndex negative", x, y, 8, -1, Significance1Pct, dataset.ErrIndexRange},
		{"firstIndex too large", x, y, 8, 15, Significance1Pct, dataset.ErrIndexRange},
		{"level zero", x, y, 8, 9, 0, ErrSignificanceLevel},
		{"level 0.5", x, y, 8, 9, 0.5, ErrSignificanceLevel},
		{"level 0.025", x, y, 8, 9, 0.025, ErrSignificanceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Test(tt.x, tt.y, tt.lastIndex, tt.firstIndex, tt.level, nil)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPValueRange(t *testing.T) {
	x, y := breakData()

	n := y.Len()
	for last := 2; last < n-3; last++ {
		result, err := Test(x, y, last, last+1, Significance5Pct, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.PValue, 0.0, "split at %d", last)
		assert.LessOrEqual(t, result.PValue, 1.0, "split at %d", last)
		assert.GreaterOrEqual(t, result.Statistic, 0.0, "split at %d", last)
	}
}

func TestColumnMatchesSingleColumnTable(t *testing.T) {
	x, y := workedExample(t)
	column := x.Columns[0]

	fromTable, err := Test(x, y, 8, 9, Significance1Pct, nil)
	require.NoError(t, err)

	fromColumn, err := TestColumn(column, y, 8, 9, Significance1Pct, nil)
	require.NoError(t, err)

	assert.Equal(t, fromTable, fromColumn)
}

func TestColumnNil(t *testing.T) {
	_, err := TestColumn(nil, dataset.NewColumn("y", []float64{1, 2}), 0, 1, Significance5Pct, nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyColumn)
}

func TestMultiplePredictors(t *testing.T) {
	x, y := breakData()
	xv := x.Columns[0].Values

	sq := make([]float64, len(xv))
	for i, v := range xv {
		sq[i] = v * v
	}
	wide, err := dataset.NewTable(x.Columns[0], dataset.NewColumn("xsq", sq))
	require.NoError(t, err)

	result, err := Test(wide, y, 19, 20, Significance5Pct, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.K)
	assert.Equal(t, 40-2*3, result.DoF)
	assert.Equal(t, VerdictReject, result.Verdict)
}

func TestOverlapAllowed(t *testing.T) {
	x, y := stableData()

	result, err := Test(x, y, 25, 10, Significance5Pct, nil)
	require.NoError(t, err)

	assert.Equal(t, 26, result.N1)
	assert.Equal(t, 30, result.N2)
}

func TestGapRowsExcluded(t *testing.T) {
	x, y := stableData()

	result, err := Test(x, y, 14, 25, Significance5Pct, nil)
	require.NoError(t, err)

	// Rows 15 through 24 fall in the excluded break window
	assert.Equal(t, 15, result.N1)
	assert.Equal(t, 15, result.N2)
	assert.Equal(t, 15+15-4, result.DoF)
}

func TestVerboseOutput(t *testing.T) {
	x, y := breakData()

	var buf bytes.Buffer
	_, err := Test(x, y, 19, 20, Significance1Pct, &Options{Verbose: true, Output: &buf})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Reject the null hypothesis of equality of regression coefficients in the 2 periods.")
	assert.Contains(t, out, "Chow Statistic:")
	assert.Contains(t, out, "p value:")

	buf.Reset()
	_, err = Test(x, y, 19, 20, Significance1Pct, &Options{Output: &buf})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestVerboseFailToReject(t *testing.T) {
	x, y := stableData()

	var buf bytes.Buffer
	_, err := Test(x, y, 19, 20, Significance5Pct, &Options{Verbose: true, Output: &buf})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Fail to reject the null hypothesis")
}

func TestVerboseDoesNotChangeResult(t *testing.T) {
	x, y := breakData()

	quiet, err := Test(x, y, 19, 20, Significance5Pct, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	verbose, err := Test(x, y, 19, 20, Significance5Pct, &Options{Verbose: true, Output: &buf})
	require.NoError(t, err)

	assert.Equal(t, quiet, verbose)
}

func TestSignificanceValid(t *testing.T) {
	assert.True(t, Significance1Pct.Valid())
	assert.True(t, Significance5Pct.Valid())
	assert.True(t, Significance10Pct.Valid())
	assert.False(t, Significance(0.2).Valid())
	assert.False(t, Significance(0).Valid())
}

func TestSignificanceString(t *testing.T) {
	assert.Equal(t, "1%", Significance1Pct.String())
	assert.Equal(t, "5%", Significance5Pct.String())
	assert.Equal(t, "10%", Significance10Pct.String())
	assert.Equal(t, "0.2", Significance(0.2).String())
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "reject", VerdictReject.String())
	assert.Equal(t, "fail to reject", VerdictFailToReject.String())
	assert.Equal(t, "degenerate", VerdictDegenerate.String())
	assert.Equal(t, "unknown", Verdict(99).String())
}
