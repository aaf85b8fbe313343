// Package chowtest provides structural break detection for linear regressions.
//
// ChowTest is a Go package for testing whether the coefficients of a linear
// regression are stable across two periods of a dataset. It implements the
// classical Chow test together with utilities for loading data, fitting
// ordinary least squares regressions, and scanning a series for the most
// likely break point.
//
// # Features
//
//   - Chow test for equality of regression coefficients across two periods
//   - Ordinary least squares fitting with residual diagnostics
//   - Automatic break point scanning across all candidate splits
//   - Tabular data structures with CSV loading and saving
//   - Configurable significance levels (1%, 5%, 10%)
//
// # Quick Start
//
// Run a Chow test with a break between rows 59 and 60:
//
//	x := dataset.NewColumn("x", xs).Table()
//	y := dataset.NewColumn("y", ys)
//	result, _ := chow.Test(x, y, 59, 60, chow.Significance5Pct, nil)
//	if result.Verdict == chow.VerdictReject {
//		fmt.Println("structural break detected")
//	}
//
// Scan for the most likely break point automatically:
//
//	result, _ := autochow.Scan(x, y, autochow.DefaultConfig())
//	if result.Best != nil {
//		fmt.Printf("break at row %d\n", result.Best.Index)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - chow: The Chow test itself
//   - autochow: Automatic break point scanning
//   - regression: Ordinary least squares fitting
//   - dataset: Columns, tables, and CSV input/output
//
// # References
//
//   - Chow, G. C. (1960). Tests of Equality Between Sets of Coefficients in Two Linear Regressions. Econometrica, 28(3)
package chowtest
