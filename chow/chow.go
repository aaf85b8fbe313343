// Package chow implements the Chow test for structural breaks in
// regression coefficients.
package chow

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/David-Woroniuk/chowtest/dataset"
	"github.com/David-Woroniuk/chowtest/regression"
)

// Result represents the outcome of a Chow test.
type Result struct {
	Statistic float64      // F statistic; 0 when the test is degenerate
	PValue    float64      // In [0, 1]; 1 when the test is degenerate
	Verdict   Verdict      // Reject, fail to reject, or degenerate
	Level     Significance // Level the verdict was decided at

	RSSPooled float64 // Residual sum of squares over all rows
	RSS1      float64 // Residual sum of squares over rows [0, lastIndex]
	RSS2      float64 // Residual sum of squares over rows [firstIndex, n)
	K         int     // Parameters per regression (columns plus intercept)
	N1        int     // Observations in the first period
	N2        int     // Observations in the second period
	DoF       int     // Denominator degrees of freedom: N1 + N2 - 2K
}

// Test runs a Chow test for a structural break in the regression of y on
// the columns of x. Rows [0, lastIndex] form the first period and rows
// [firstIndex, n) form the second; both boundaries are inclusive, and
// rows strictly between them are excluded from the sub-period fits. The
// null hypothesis is that the regression coefficients are equal in the
// two periods; it is rejected when the p-value is at or below level.
//
// Splits that leave no residual degrees of freedom, or whose sub-period
// fits are exact, cannot support the F statistic. Such calls succeed and
// report statistic 0, p-value 1, and VerdictDegenerate.
func Test(x *dataset.Table, y *dataset.Column, lastIndex, firstIndex int, level Significance, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validate(x, y, lastIndex, firstIndex, level); err != nil {
		return nil, err
	}

	pooled, err := regression.OLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("pooled fit: %w", err)
	}

	xBefore, xAfter, err := x.Split(lastIndex, firstIndex)
	if err != nil {
		return nil, err
	}
	yBefore, yAfter, err := y.Split(lastIndex, firstIndex)
	if err != nil {
		return nil, err
	}

	fit1, err := regression.OLS(xBefore, yBefore)
	if err != nil {
		return nil, fmt.Errorf("first period fit: %w", err)
	}
	fit2, err := regression.OLS(xAfter, yAfter)
	if err != nil {
		return nil, fmt.Errorf("second period fit: %w", err)
	}

	k := x.NumCols() + 1
	n1 := xBefore.NumRows()
	n2 := xAfter.NumRows()
	dof := n1 + n2 - 2*k

	result := &Result{
		Level:     level,
		RSSPooled: pooled.RSS,
		RSS1:      fit1.RSS,
		RSS2:      fit2.RSS,
		K:         k,
		N1:        n1,
		N2:        n2,
		DoF:       dof,
	}

	rssSplit := fit1.RSS + fit2.RSS

	// Pooling never fits better than splitting; a negative difference is
	// floating point noise.
	numerator := (pooled.RSS - rssSplit) / float64(k)
	if numerator < 0 {
		numerator = 0
	}

	if dof <= 0 || rssSplit == 0 {
		result.Statistic = 0
		result.PValue = 1
		result.Verdict = VerdictDegenerate
	} else {
		statistic := numerator / (rssSplit / float64(dof))

		dist := distuv.F{D1: float64(k), D2: float64(dof)}
		pValue := 1 - dist.CDF(statistic)
		if pValue < 0 {
			pValue = 0
		}
		if pValue > 1 {
			pValue = 1
		}

		result.Statistic = statistic
		result.PValue = pValue
		if pValue <= float64(level) {
			result.Verdict = VerdictReject
		} else {
			result.Verdict = VerdictFailToReject
		}
	}

	if opts.Verbose {
		result.report(opts.Output)
	}

	return result, nil
}

// TestColumn runs Test with a single predictor column.
func TestColumn(x *dataset.Column, y *dataset.Column, lastIndex, firstIndex int, level Significance, opts *Options) (*Result, error) {
	if x == nil {
		return nil, fmt.Errorf("x: %w", dataset.ErrEmptyColumn)
	}
	return Test(x.Table(), y, lastIndex, firstIndex, level, opts)
}

// validate rejects malformed arguments before any numeric work.
func validate(x *dataset.Table, y *dataset.Column, lastIndex, firstIndex int, level Significance) error {
	if x == nil || x.NumCols() == 0 {
		return fmt.Errorf("x: %w", dataset.ErrNoColumns)
	}
	n := x.NumRows()
	if n == 0 {
		return fmt.Errorf("x: %w", dataset.ErrEmptyColumn)
	}
	if y == nil || y.Len() == 0 {
		return fmt.Errorf("y: %w", dataset.ErrEmptyColumn)
	}
	if y.Len() != n {
		return fmt.Errorf("y has %d values, x has %d rows: %w", y.Len(), n, dataset.ErrLengthMismatch)
	}
	if err := x.Validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := y.Validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	if lastIndex < 0 || lastIndex >= n {
		return fmt.Errorf("lastIndex %d outside [0, %d): %w", lastIndex, n, dataset.ErrIndexRange)
	}
	if firstIndex < 0 || firstIndex >= n {
		return fmt.Errorf("firstIndex %d outside [0, %d): %w", firstIndex, n, dataset.ErrIndexRange)
	}
	if !level.Valid() {
		return fmt.Errorf("level %v: %w", float64(level), ErrSignificanceLevel)
	}
	return nil
}

// report writes the human-readable outcome banner. The format is
// diagnostic only and not stable.
func (r *Result) report(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	line := strings.Repeat("*", 100)

	fmt.Fprintln(w, line)
	switch r.Verdict {
	case VerdictReject:
		fmt.Fprintln(w, "Reject the null hypothesis of equality of regression coefficients in the 2 periods.")
	case VerdictFailToReject:
		fmt.Fprintln(w, "Fail to reject the null hypothesis of equality of regression coefficients in the 2 periods.")
	case VerdictDegenerate:
		fmt.Fprintln(w, "Chow test is degenerate for this split; reporting statistic 0 and p value 1.")
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Chow Statistic: %g p value: %.5f\n", r.Statistic, r.PValue)
	fmt.Fprintln(w, line)
}
