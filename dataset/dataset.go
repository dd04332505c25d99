// Package dataset defines the tabular dataset value consumed by the
// regression engine and the deterministic train/test splitter.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// Dataset is an ordered collection of records: an n×k feature matrix, a
// length-n target vector and the k feature names aligned to the matrix
// columns. Values are never mutated after construction; splits produce new
// Dataset values.
type Dataset struct {
	X            *mat.Dense
	Y            *mat.VecDense
	FeatureNames []string
}

// New validates the alignment between features, targets and names and
// returns a Dataset.
func New(x *mat.Dense, y *mat.VecDense, featureNames []string) (*Dataset, error) {
	n, k := x.Dims()

	if n == 0 || k == 0 {
		return nil, errors.NewValueError("dataset.New", "empty feature matrix")
	}

	if y.Len() != n {
		return nil, errors.NewDimensionError("dataset.New", n, y.Len(), 0)
	}

	if len(featureNames) != k {
		return nil, errors.NewDimensionError("dataset.New", k, len(featureNames), 1)
	}

	return &Dataset{X: x, Y: y, FeatureNames: featureNames}, nil
}

// NumSamples returns the number of records.
func (ds *Dataset) NumSamples() int {
	n, _ := ds.X.Dims()
	return n
}

// NumFeatures returns the number of feature columns.
func (ds *Dataset) NumFeatures() int {
	_, k := ds.X.Dims()
	return k
}

// Take returns a new Dataset holding the rows at the given indices, in the
// given order. Feature names are shared, not copied; they are immutable by
// convention.
func (ds *Dataset) Take(indices []int) *Dataset {
	_, k := ds.X.Dims()

	x := mat.NewDense(len(indices), k, nil)
	y := mat.NewVecDense(len(indices), nil)

	for row, idx := range indices {
		for j := 0; j < k; j++ {
			x.Set(row, j, ds.X.At(idx, j))
		}
		y.SetVec(row, ds.Y.AtVec(idx))
	}

	return &Dataset{X: x, Y: y, FeatureNames: ds.FeatureNames}
}
