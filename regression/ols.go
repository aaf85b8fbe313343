// Package regression provides ordinary least squares fitting over gonum.
package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/David-Woroniuk/chowtest/dataset"
)

// rankTolerance is the singular value cutoff used when a design matrix
// has to be solved through the SVD fallback.
const rankTolerance = 1e-12

var (
	// ErrSolveFailed is returned when the design matrix cannot be factorized.
	ErrSolveFailed = errors.New("least squares factorization failed")

	// ErrPredictorCount is returned when prediction data does not match
	// the fitted design.
	ErrPredictorCount = errors.New("predictor count does not match the fitted design")
)

// Fit holds a fitted ordinary least squares regression.
type Fit struct {
	Coeffs    []float64 // Intercept first, then one coefficient per column
	Fitted    []float64 // Predicted response, one value per observation
	Actual    []float64 // Observed response
	Residuals []float64 // Actual minus fitted
	RSS       float64   // Residual sum of squares
	N         int       // Number of observations
	K         int       // Estimated parameters (columns plus intercept)
}

// Observation pairs one fitted value with its actual value and residual.
type Observation struct {
	Predicted  float64
	Actual     float64
	Residual   float64
	ResidualSq float64
}

// OLS fits an ordinary least squares regression of y on the columns of x.
// An intercept column is added internally, so k = x columns + 1
// parameters are estimated. Rank-deficient and underdetermined designs
// are solved in the minimum-norm sense rather than failing, which lets
// very small subsets produce an interpolating fit with near-zero RSS.
func OLS(x *dataset.Table, y *dataset.Column) (*Fit, error) {
	if x == nil || x.NumCols() == 0 {
		return nil, fmt.Errorf("x: %w", dataset.ErrNoColumns)
	}
	n := x.NumRows()
	if n == 0 {
		return nil, fmt.Errorf("x: %w", dataset.ErrEmptyColumn)
	}
	if y == nil || y.Len() != n {
		yLen := 0
		if y != nil {
			yLen = y.Len()
		}
		return nil, fmt.Errorf("y has %d values, x has %d rows: %w", yLen, n, dataset.ErrLengthMismatch)
	}

	k := x.NumCols() + 1
	design := designMatrix(x)

	actual := make([]float64, n)
	copy(actual, y.Values)
	response := mat.NewVecDense(n, actual)

	coeffs := mat.NewVecDense(k, nil)
	if err := coeffs.SolveVec(design, response); err != nil {
		// Rank-deficient or ill-conditioned design. Fall back to the
		// minimum-norm least squares solution.
		var svd mat.SVD
		if !svd.Factorize(design, mat.SVDThin) {
			return nil, fmt.Errorf("%dx%d design: %w", n, k, ErrSolveFailed)
		}
		if rank := svd.Rank(rankTolerance); rank > 0 {
			svd.SolveVecTo(coeffs, response, rank)
		}
		// Rank zero keeps the zero vector, the minimum-norm solution.
	}

	var fitted mat.VecDense
	fitted.MulVec(design, coeffs)

	var resid mat.VecDense
	resid.SubVec(response, &fitted)

	return &Fit{
		Coeffs:    vecValues(coeffs),
		Fitted:    vecValues(&fitted),
		Actual:    actual,
		Residuals: vecValues(&resid),
		RSS:       mat.Dot(&resid, &resid),
		N:         n,
		K:         k,
	}, nil
}

// Predict applies the fitted coefficients to new predictor data. The
// table must have the same number of columns the fit was built from.
func (f *Fit) Predict(x *dataset.Table) ([]float64, error) {
	if x == nil || x.NumCols()+1 != f.K {
		got := 0
		if x != nil {
			got = x.NumCols()
		}
		return nil, fmt.Errorf("x has %d columns, fit used %d: %w", got, f.K-1, ErrPredictorCount)
	}
	if x.NumRows() == 0 {
		return nil, fmt.Errorf("x: %w", dataset.ErrEmptyColumn)
	}

	coeffs := mat.NewVecDense(f.K, f.Coeffs)

	var out mat.VecDense
	out.MulVec(designMatrix(x), coeffs)

	return vecValues(&out), nil
}

// Summary returns the per-observation regression records.
func (f *Fit) Summary() []Observation {
	obs := make([]Observation, f.N)
	for i := range obs {
		r := f.Residuals[i]
		obs[i] = Observation{
			Predicted:  f.Fitted[i],
			Actual:     f.Actual[i],
			Residual:   r,
			ResidualSq: r * r,
		}
	}
	return obs
}

// designMatrix builds the n x k design with a leading ones column for
// the intercept.
func designMatrix(x *dataset.Table) *mat.Dense {
	n := x.NumRows()
	m := mat.NewDense(n, x.NumCols()+1, nil)
	for i := 0; i < n; i++ {
		m.Set(i, 0, 1)
		for j, c := range x.Columns {
			m.Set(i, j+1, c.Values[i])
		}
	}
	return m
}

func vecValues(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
