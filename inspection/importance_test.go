package inspection

import (
	"strings"
	"testing"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// stubModel satisfies WeightedModel without touching linear algebra.
type stubModel struct {
	fitted bool
	coef   []float64
}

func (m stubModel) IsFitted() bool  { return m.fitted }
func (m stubModel) Coef() []float64 { return m.coef }

func TestRankFeatures(t *testing.T) {
	// Bias is 1 but must not appear in the table; ranking is by |weight|,
	// so -5 outranks 3.
	m := stubModel{fitted: true, coef: []float64{-5, 3, 0.1}}
	names := []string{"A", "B", "C"}

	table, err := RankFeatures(m, names)
	if err != nil {
		t.Fatalf("RankFeatures() error = %v", err)
	}

	wantOrder := []string{"A", "B", "C"}
	wantWeights := []float64{-5, 3, 0.1}
	if len(table) != len(wantOrder) {
		t.Fatalf("len(table) = %d, want %d", len(table), len(wantOrder))
	}
	for i := range table {
		if table[i].Name != wantOrder[i] {
			t.Errorf("rank %d = %q, want %q", i+1, table[i].Name, wantOrder[i])
		}
		if table[i].Weight != wantWeights[i] {
			t.Errorf("rank %d weight = %v, want %v", i+1, table[i].Weight, wantWeights[i])
		}
	}

	// AbsWeight carries the magnitude used for ordering.
	if table[0].AbsWeight != 5 {
		t.Errorf("AbsWeight = %v, want 5", table[0].AbsWeight)
	}
}

func TestRankFeaturesTieStability(t *testing.T) {
	// Equal magnitudes keep the original feature order.
	m := stubModel{fitted: true, coef: []float64{2, -2, 2}}
	names := []string{"first", "second", "third"}

	table, err := RankFeatures(m, names)
	if err != nil {
		t.Fatalf("RankFeatures() error = %v", err)
	}

	for i, want := range names {
		if table[i].Name != want {
			t.Errorf("rank %d = %q, want %q (stable ties)", i+1, table[i].Name, want)
		}
	}
}

func TestRankFeaturesErrors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		_, err := RankFeatures(stubModel{fitted: false}, nil)
		var notFitted *errors.NotFittedError
		if !errors.As(err, &notFitted) {
			t.Errorf("RankFeatures() error = %v, want *errors.NotFittedError", err)
		}
	})

	t.Run("name count mismatch", func(t *testing.T) {
		m := stubModel{fitted: true, coef: []float64{1, 2}}
		_, err := RankFeatures(m, []string{"only one"})
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("RankFeatures() error = %v, want *errors.DimensionError", err)
		}
	})
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   string
	}{
		{"positive", 0.3, "increases"},
		{"negative", -1.5, "decreases"},
		{"zero", 0, "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.weight); got != tt.want {
				t.Errorf("Direction(%v) = %q, want %q", tt.weight, got, tt.want)
			}
		})
	}
}

func TestTableString(t *testing.T) {
	m := stubModel{fitted: true, coef: []float64{-0.5, 1.25}}
	table, err := RankFeatures(m, []string{"Votes", "Price range"})
	if err != nil {
		t.Fatalf("RankFeatures() error = %v", err)
	}

	out := table.String()
	for _, want := range []string{"Rank", "Price range", "Votes", "increases", "decreases"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}

	// Highest magnitude first.
	if strings.Index(out, "Price range") > strings.Index(out, "Votes") {
		t.Errorf("Price range should be ranked before Votes:\n%s", out)
	}
}
