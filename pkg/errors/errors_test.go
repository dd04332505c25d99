package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatalf("As() failed for %v", err)
	}
	if notFitted.ModelName != "LinearRegression" || notFitted.Method != "Predict" {
		t.Errorf("fields = %+v", notFitted)
	}

	msg := err.Error()
	for _, want := range []string{"LinearRegression", "not fitted", "Predict"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		axis     int
		wantAxis string
	}{
		{"row axis", 0, "rows"},
		{"feature axis", 1, "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Fit", 10, 7, tt.axis)

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatalf("As() failed for %v", err)
			}
			if dimErr.Expected != 10 || dimErr.Got != 7 {
				t.Errorf("fields = %+v", dimErr)
			}
			if !strings.Contains(err.Error(), tt.wantAxis) {
				t.Errorf("Error() = %q, missing %q", err.Error(), tt.wantAxis)
			}
		})
	}
}

func TestValueError(t *testing.T) {
	err := NewValueError("TrainTestSplit", "test fraction must be in (0, 1)")

	var valueErr *ValueError
	if !As(err, &valueErr) {
		t.Fatalf("As() failed for %v", err)
	}
	if !strings.Contains(err.Error(), "test fraction must be in (0, 1)") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Fit", "SVD factorization failed", ErrSingularMatrix)

	if !Is(err, ErrSingularMatrix) {
		t.Errorf("Is(err, ErrSingularMatrix) = false, want true")
	}

	var modelErr *ModelError
	if !As(err, &modelErr) {
		t.Fatalf("As() failed for %v", err)
	}
	if modelErr.Kind != "SVD factorization failed" {
		t.Errorf("Kind = %q", modelErr.Kind)
	}
}

func TestNumericalInstabilityErrorTruncatesValues(t *testing.T) {
	values := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1, 2, 3, 4}
	err := NewNumericalInstabilityError("MSE", values)

	msg := err.Error()
	if !strings.Contains(msg, "MSE") {
		t.Errorf("Error() = %q, missing operation", msg)
	}
	if !strings.Contains(msg, "...") {
		t.Errorf("Error() = %q, long value list should be truncated", msg)
	}
}

func TestUndefinedMetricWarningMessage(t *testing.T) {
	w := NewUndefinedMetricWarning("R2Score", "zero variance in true values", math.NaN())

	msg := w.Error()
	for _, want := range []string{"R2Score", "ill-defined", "zero variance"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestWarnHandlerPrecedence(t *testing.T) {
	defer SetWarningHandler(nil)
	defer SetZerologWarnFunc(nil)

	var plain, sink int
	SetWarningHandler(func(error) { plain++ })
	Warn(New("first"))

	// Installing a zerolog sink takes precedence over the plain handler.
	SetZerologWarnFunc(func(error) { sink++ })
	Warn(New("second"))

	if plain != 1 {
		t.Errorf("plain handler calls = %d, want 1", plain)
	}
	if sink != 1 {
		t.Errorf("sink calls = %d, want 1", sink)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"all finite", []float64{1.0, -2.5, 0, 1e300}, false},
		{"contains NaN", []float64{1.0, math.NaN()}, true},
		{"contains +Inf", []float64{math.Inf(1)}, true},
		{"contains -Inf", []float64{0, math.Inf(-1)}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckNumericalStability("test", tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckNumericalStability() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		want        float64
	}{
		{"normal division", 10, 4, 2.5},
		{"zero denominator", 1, 0, 0},
		{"near-zero denominator", 1, 1e-12, 0},
		{"negative values", -9, 3, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeDivide(tt.numerator, tt.denominator); got != tt.want {
				t.Errorf("SafeDivide(%v, %v) = %v, want %v", tt.numerator, tt.denominator, got, tt.want)
			}
		})
	}
}
