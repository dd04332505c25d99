// Package inspection derives feature importance from fitted linear models.
package inspection

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// WeightedModel is the model surface needed for attribution: a fitted-state
// check and the per-feature weights, bias excluded.
type WeightedModel interface {
	IsFitted() bool
	Coef() []float64
}

// FeatureWeight is one row of the importance table.
type FeatureWeight struct {
	Name      string
	Weight    float64
	AbsWeight float64
}

// Table is an importance table ordered by descending absolute weight.
type Table []FeatureWeight

// RankFeatures pairs each feature weight with its name and orders the result
// by descending absolute weight. The sort is stable, so ties keep the
// original feature order; near-duplicate features make ties a real case, not
// a theoretical one. The bias term is excluded.
func RankFeatures(m WeightedModel, featureNames []string) (Table, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "RankFeatures")
	}

	coef := m.Coef()
	if len(featureNames) != len(coef) {
		return nil, errors.NewDimensionError("inspection.RankFeatures", len(coef), len(featureNames), 1)
	}

	table := make(Table, len(coef))
	for i, w := range coef {
		table[i] = FeatureWeight{
			Name:      featureNames[i],
			Weight:    w,
			AbsWeight: math.Abs(w),
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].AbsWeight > table[j].AbsWeight
	})

	return table, nil
}

// Direction describes the sign of a weight for display purposes.
func Direction(weight float64) string {
	switch {
	case weight > 0:
		return "increases"
	case weight < 0:
		return "decreases"
	default:
		return "neutral"
	}
}

// String renders the table as a fixed-width report.
func (t Table) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-6s %-30s %12s %12s  %s\n", "Rank", "Feature", "Weight", "|Weight|", "Impact")
	fmt.Fprintln(&b, strings.Repeat("-", 74))
	for i, fw := range t {
		fmt.Fprintf(&b, "%-6d %-30s %12.4f %12.4f  %s\n",
			i+1, fw.Name, fw.Weight, fw.AbsWeight, Direction(fw.Weight))
	}

	return b.String()
}
