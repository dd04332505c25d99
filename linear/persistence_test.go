package linear

import (
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

func fittedModel(t *testing.T) *LinearRegression {
	t.Helper()

	X := mat.NewDense(4, 2, []float64{
		0, 1,
		1, 2,
		2, 0,
		3, 4,
	})
	y := mat.NewVecDense(4, nil)
	for i := 0; i < 4; i++ {
		y.SetVec(i, 0.5+2*X.At(i, 0)-1.5*X.At(i, 1))
	}

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return lr
}

func TestWeightFileRoundTrip(t *testing.T) {
	lr := fittedModel(t)
	path := filepath.Join(t.TempDir(), "weights.txt")

	if err := lr.SaveWeights(path); err != nil {
		t.Fatalf("SaveWeights() error = %v", err)
	}

	restored := NewLinearRegression()
	if err := restored.LoadWeights(path); err != nil {
		t.Fatalf("LoadWeights() error = %v", err)
	}

	if !restored.IsFitted() {
		t.Fatal("restored model is not fitted")
	}

	want := lr.Weights()
	got := restored.Weights()
	if len(got) != len(want) {
		t.Fatalf("restored %d weights, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("weight[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Restored models must predict identically.
	X := mat.NewDense(2, 2, []float64{1, 1, 2, 3})
	p1, err := lr.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	p2, err := restored.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	for i := 0; i < p1.Len(); i++ {
		if p1.AtVec(i) != p2.AtVec(i) {
			t.Errorf("prediction[%d] differs after reload: %v vs %v", i, p1.AtVec(i), p2.AtVec(i))
		}
	}
}

func TestSaveWeightsNotFitted(t *testing.T) {
	lr := NewLinearRegression()
	err := lr.SaveWeights(filepath.Join(t.TempDir(), "weights.txt"))

	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("SaveWeights() error = %v, want *errors.NotFittedError", err)
	}
}

func TestExportImportWeights(t *testing.T) {
	lr := fittedModel(t)
	names := []string{"cost", "votes"}

	envelope, err := lr.ExportWeights(names)
	if err != nil {
		t.Fatalf("ExportWeights() error = %v", err)
	}
	if err := envelope.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if envelope.ModelType != "LinearRegression" {
		t.Errorf("ModelType = %q, want LinearRegression", envelope.ModelType)
	}

	restored := NewLinearRegression()
	if err := restored.ImportWeights(envelope); err != nil {
		t.Fatalf("ImportWeights() error = %v", err)
	}

	if restored.Intercept() != lr.Intercept() {
		t.Errorf("Intercept() = %v, want %v", restored.Intercept(), lr.Intercept())
	}
	wantCoef := lr.Coef()
	for i, c := range restored.Coef() {
		if c != wantCoef[i] {
			t.Errorf("Coef()[%d] = %v, want %v", i, c, wantCoef[i])
		}
	}
}

func TestExportWeightsErrors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		_, err := NewLinearRegression().ExportWeights(nil)
		var notFitted *errors.NotFittedError
		if !errors.As(err, &notFitted) {
			t.Errorf("ExportWeights() error = %v, want *errors.NotFittedError", err)
		}
	})

	t.Run("name count mismatch", func(t *testing.T) {
		lr := fittedModel(t)
		_, err := lr.ExportWeights([]string{"only one"})
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("ExportWeights() error = %v, want *errors.DimensionError", err)
		}
	})
}

func TestImportWeightsRejectsWrongType(t *testing.T) {
	lr := fittedModel(t)
	envelope, err := lr.ExportWeights(nil)
	if err != nil {
		t.Fatalf("ExportWeights() error = %v", err)
	}
	envelope.ModelType = "GradientBoosting"

	err = NewLinearRegression().ImportWeights(envelope)
	var valueErr *errors.ValueError
	if !errors.As(err, &valueErr) {
		t.Errorf("ImportWeights() error = %v, want *errors.ValueError", err)
	}
}
