// Package metrics provides regression evaluation metrics over true/predicted
// value pairs.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// RegressionMetrics is the immutable result of a single evaluation.
type RegressionMetrics struct {
	MSE  float64
	RMSE float64
	MAE  float64
	R2   float64
}

// Evaluate computes MSE, RMSE, MAE and R² for one pair of equal-length
// sequences. Errors from the individual metrics propagate unmodified; a
// non-finite error metric computed from inputs surfaces as a
// NumericalInstabilityError. R² may be NaN under the zero-variance policy
// documented on R2Score.
func Evaluate(yTrue, yPred *mat.VecDense) (RegressionMetrics, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}

	if err := errors.CheckNumericalStability("metrics.Evaluate", []float64{mse, mae}); err != nil {
		return RegressionMetrics{}, err
	}

	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}

	return RegressionMetrics{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  mae,
		R2:   r2,
	}, nil
}

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += math.Abs(diff)
	}

	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination
//
//	R² = 1 - SS_res/SS_tot
//
// where SS_res = Σ(yTrue - yPred)² and SS_tot = Σ(yTrue - mean(yTrue))².
//
// When all true values are identical SS_tot is zero and R² is mathematically
// undefined. The fixed policy here is to return NaN and raise an
// UndefinedMetricWarning through the pkg/errors warning handler; the value
// is never silently replaced with 0 and the division is never performed.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		ssTot += (yTrueVal - yMean) * (yTrueVal - yMean)
		ssRes += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if ssTot == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R2Score",
			"zero variance in yTrue", math.NaN()))
		return math.NaN(), nil
	}

	return 1 - ssRes/ssTot, nil
}
