package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/metrics"
	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// Score returns the coefficient of determination R² of the prediction on
// (X, y). The zero-variance policy of metrics.R2Score applies.
func (lr *LinearRegression) Score(X mat.Matrix, y *mat.VecDense) (float64, error) {
	if !lr.state.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(y, yPred)
}
