// Package chow implements the Chow test for structural breaks in
// regression coefficients.
//
// The Chow test asks whether the coefficients of a linear regression are
// the same in two sub-periods of a dataset, or whether they shift at an
// assumed break point. Three regressions are fitted: one over the pooled
// data and one over each sub-period. The statistic
//
//	F = ((RSS_pooled - (RSS1 + RSS2)) / k) / ((RSS1 + RSS2) / (N1 + N2 - 2k))
//
// follows an F distribution with k and N1+N2-2k degrees of freedom under
// the null hypothesis of equal coefficients, where k counts the
// regression parameters including the intercept.
//
// # Basic Usage
//
// Test for a break between rows 8 and 9 at the 1% level:
//
//	result, err := chow.Test(x, y, 8, 9, chow.Significance1Pct, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("F = %.4f, p = %.5f\n", result.Statistic, result.PValue)
//	if result.Verdict == chow.VerdictReject {
//	    fmt.Println("coefficients differ between the periods")
//	}
//
// A single predictor column works without building a table:
//
//	result, err := chow.TestColumn(price, sales, 8, 9, chow.Significance5Pct, nil)
//
// # Split Semantics
//
// lastIndex is the final row of the first period and firstIndex the
// first row of the second; both are inclusive positions in [0, n). Rows
// strictly between them are excluded, which supports leaving a gap
// around the suspected break. Overlapping splits are not rejected.
//
// # Significance Levels
//
// Only the conventional 1%, 5%, and 10% levels are accepted, mirroring
// the tabulated critical values the test is usually read against. Any
// other level fails validation with ErrSignificanceLevel.
//
// # Degenerate Splits
//
// A split can leave the statistic undefined: with N1 + N2 <= 2k there
// are no residual degrees of freedom, and when both sub-period fits are
// exact the denominator is zero. Such calls succeed and report
// statistic 0, p-value 1, and VerdictDegenerate so that callers can
// tell a vacuous split from a genuine failure to reject.
//
// # Verbose Output
//
// Options can echo the classic banner summary to any writer:
//
//	opts := &chow.Options{Verbose: true, Output: os.Stderr}
//	result, err := chow.Test(x, y, 8, 9, chow.Significance5Pct, opts)
//
// The banner is diagnostic only; the Result fields carry the outcome.
package chow
