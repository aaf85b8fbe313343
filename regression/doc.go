// Package regression provides ordinary least squares fitting over gonum.
//
// This package implements the residual calculations behind the Chow
// test. A fit estimates y = b0 + b1*x1 + ... + bk*xk by least squares,
// with the intercept handled internally.
//
// # Fitting
//
// Fit a regression of a response column on a predictor table:
//
//	fit, err := regression.OLS(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("coefficients: %v\n", fit.Coeffs)
//	fmt.Printf("RSS: %.4f over %d observations\n", fit.RSS, fit.N)
//
// The intercept is Coeffs[0]; Coeffs[i] belongs to the i-th table column.
//
// # Residuals
//
// Each fit carries its fitted values, residuals, and residual sum of
// squares. Per-observation records are available as a summary:
//
//	for i, obs := range fit.Summary() {
//	    fmt.Printf("%d: predicted %.2f actual %.2f residual %.2f\n",
//	        i, obs.Predicted, obs.Actual, obs.Residual)
//	}
//
// # Prediction
//
// Apply fitted coefficients to new predictor data with the same column
// count:
//
//	predicted, err := fit.Predict(newX)
//
// # Degenerate designs
//
// Rank-deficient and underdetermined designs do not fail. The solver
// first attempts a QR least squares solution and falls back to the
// minimum-norm SVD solution, so a subset with fewer rows than
// parameters yields an interpolating fit with near-zero RSS. Callers
// that need to treat such fits specially should inspect the degrees of
// freedom themselves.
package regression
