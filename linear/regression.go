// Package linear implements closed-form linear regression via the normal
// equation with an SVD-based pseudo-inverse solve.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/core/model"
	"github.com/kaiseki-ml/kaiseki/core/parallel"
	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// Row count above which design-matrix construction and prediction are
// parallelized.
const parallelThreshold = 1000

// rcond is the relative cutoff below which singular values of X'ᵀX' are
// treated as zero when forming the pseudo-inverse. Matches numpy.linalg.pinv.
const rcond = 1e-15

// LinearRegression is a linear model fit by the normal equation
//
//	w = pinv(X'ᵀ X') · X'ᵀ y,  X' = [1 | X]
//
// where pinv is the Moore–Penrose pseudo-inverse computed from an SVD with
// singular values below rcond·σmax truncated. The pseudo-inverse keeps the
// solve well-defined when X'ᵀX' is singular or ill-conditioned, e.g. for
// collinear or constant feature columns.
//
// The weight vector has length k+1 with the bias at index 0 and is immutable
// after Fit. Predicting on an unfit model is an error.
type LinearRegression struct {
	state   *model.StateManager
	weights *mat.VecDense
	version string
}

// NewLinearRegression creates a new, unfit linear regression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{
		state:   model.NewStateManager(),
		version: "1.0.0",
	}
}

// Fit trains the model on an n×k feature matrix and a length-n target
// vector. All arithmetic is float64.
func (lr *LinearRegression) Fit(X mat.Matrix, y *mat.VecDense) error {
	n, k := X.Dims()

	if n == 0 {
		return errors.NewValueError("LinearRegression.Fit", "empty data")
	}

	if k == 0 {
		return errors.NewDimensionError("LinearRegression.Fit", 1, 0, 1)
	}

	if y.Len() != n {
		return errors.NewDimensionError("LinearRegression.Fit", n, y.Len(), 0)
	}

	xAug := augment(X, n, k)

	// Normal equation terms: X'ᵀX' and X'ᵀy.
	var xt mat.Dense
	xt.CloneFrom(xAug.T())

	var xtx mat.Dense
	xtx.Mul(&xt, xAug)

	var xty mat.VecDense
	xty.MulVec(&xt, y)

	// Pseudo-inverse solve via SVD with rank truncation.
	var svd mat.SVD
	if ok := svd.Factorize(&xtx, mat.SVDThin); !ok {
		return errors.NewModelError("LinearRegression.Fit", "SVD factorization failed", errors.ErrSingularMatrix)
	}

	rank := svd.Rank(rcond)
	if rank == 0 {
		return errors.NewModelError("LinearRegression.Fit", "zero-rank design matrix", errors.ErrSingularMatrix)
	}

	weights := mat.NewVecDense(k+1, nil)
	svd.SolveVecTo(weights, &xty, rank)

	// A diverged solve must surface, never be stored.
	if err := errors.CheckVector("LinearRegression.Fit", weights, k+1); err != nil {
		return err
	}

	lr.weights = weights
	lr.state.SetFitted()
	lr.state.SetDimensions(k, n)

	return nil
}

// Predict returns X'·w for an m×k feature matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	m, k := X.Dims()
	nFeatures, _ := lr.state.GetDimensions()
	if k != nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", nFeatures, k, 1)
	}

	predictions := mat.NewVecDense(m, nil)

	parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.weights.AtVec(0)
			for j := 0; j < k; j++ {
				pred += X.At(i, j) * lr.weights.AtVec(j+1)
			}
			predictions.SetVec(i, pred)
		}
	})

	return predictions, nil
}

// augment builds the design matrix X' = [1 | X].
func augment(X mat.Matrix, n, k int) *mat.Dense {
	xAug := mat.NewDense(n, k+1, nil)

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			xAug.Set(i, 0, 1.0)
			for j := 0; j < k; j++ {
				xAug.Set(i, j+1, X.At(i, j))
			}
		}
	})

	return xAug
}

// IsFitted returns whether the model has been fitted.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// NFeatures returns the number of features seen at fit time.
func (lr *LinearRegression) NFeatures() int {
	nFeatures, _ := lr.state.GetDimensions()
	return nFeatures
}

// Weights returns a copy of the full weight vector, bias first.
func (lr *LinearRegression) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}

	weights := make([]float64, lr.weights.Len())
	for i := 0; i < lr.weights.Len(); i++ {
		weights[i] = lr.weights.AtVec(i)
	}
	return weights
}

// Intercept returns the learned bias term.
func (lr *LinearRegression) Intercept() float64 {
	if lr.weights == nil {
		return 0
	}
	return lr.weights.AtVec(0)
}

// Coef returns a copy of the per-feature weights, bias excluded.
func (lr *LinearRegression) Coef() []float64 {
	if lr.weights == nil {
		return nil
	}

	coef := make([]float64, lr.weights.Len()-1)
	for i := range coef {
		coef[i] = lr.weights.AtVec(i + 1)
	}
	return coef
}
