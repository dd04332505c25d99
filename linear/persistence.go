package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/core/model"
	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// ExportWeights exports the fitted coefficients as a ModelWeights envelope.
// featureNames is optional; when given it must match the feature count.
func (lr *LinearRegression) ExportWeights(featureNames []string) (*model.ModelWeights, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "ExportWeights")
	}

	nFeatures, nSamples := lr.state.GetDimensions()
	if len(featureNames) > 0 && len(featureNames) != nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.ExportWeights", nFeatures, len(featureNames), 1)
	}

	return &model.ModelWeights{
		ModelType:    "LinearRegression",
		Version:      lr.version,
		Coefficients: lr.Coef(),
		Intercept:    lr.Intercept(),
		Features:     featureNames,
		IsFitted:     true,
		Metadata: map[string]interface{}{
			"n_features": nFeatures,
			"n_samples":  nSamples,
		},
	}, nil
}

// ImportWeights restores a fitted model from a ModelWeights envelope.
func (lr *LinearRegression) ImportWeights(weights *model.ModelWeights) error {
	if weights == nil {
		return errors.NewValueError("LinearRegression.ImportWeights", "weights cannot be nil")
	}

	if weights.ModelType != "LinearRegression" {
		return errors.NewValueError("LinearRegression.ImportWeights",
			"model type mismatch: expected LinearRegression, got "+weights.ModelType)
	}

	if err := weights.Validate(); err != nil {
		return errors.Wrap(err, "invalid weights")
	}

	lr.setWeights(weights.Intercept, weights.Coefficients)
	return nil
}

// SaveWeights writes the coefficients to a flat text file, one value per
// line, bias first.
func (lr *LinearRegression) SaveWeights(filename string) error {
	if !lr.state.IsFitted() {
		return errors.NewNotFittedError("LinearRegression", "SaveWeights")
	}

	return model.SaveWeightsFile(filename, lr.Intercept(), lr.Coef())
}

// LoadWeights restores a fitted model from a flat weight file written by
// SaveWeights. The sample count is unknown after loading and reported as 0.
func (lr *LinearRegression) LoadWeights(filename string) error {
	bias, coef, err := model.LoadWeightsFile(filename)
	if err != nil {
		return errors.Wrap(err, "failed to load weights")
	}

	if len(coef) == 0 {
		return errors.NewValueError("LinearRegression.LoadWeights", "weight file holds no feature weights")
	}

	lr.setWeights(bias, coef)
	return nil
}

func (lr *LinearRegression) setWeights(bias float64, coef []float64) {
	weights := mat.NewVecDense(len(coef)+1, nil)
	weights.SetVec(0, bias)
	for i, c := range coef {
		weights.SetVec(i+1, c)
	}

	lr.weights = weights
	lr.state.SetFitted()
	lr.state.SetDimensions(len(coef), 0)
}
