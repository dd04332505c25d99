package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/kaiseki-ml/kaiseki/pkg/errors"
	kLog "github.com/kaiseki-ml/kaiseki/pkg/log"
)

// LoadCSV reads a tabular CSV file into a Dataset.
//
// The first row must be a header. featureCols selects the feature columns in
// order; targetCol selects the target column. Cell values are interpreted as
// float64, with "Yes"/"No" encoded as 1/0. Missing or unparsable feature
// values are filled with the column median; rows whose target is missing are
// dropped. This is the cleaning collaborator in front of the regression
// core, which itself assumes complete numeric data.
func LoadCSV(path string, featureCols []string, targetCol string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer file.Close()

	return ReadCSV(file, featureCols, targetCol)
}

// ReadCSV is LoadCSV over an io.Reader.
func ReadCSV(r io.Reader, featureCols []string, targetCol string) (*Dataset, error) {
	if len(featureCols) == 0 {
		return nil, errors.NewValueError("dataset.ReadCSV", "no feature columns selected")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	featureIdx := make([]int, len(featureCols))
	for i, name := range featureCols {
		idx, ok := colIndex[name]
		if !ok {
			return nil, errors.NewValueError("dataset.ReadCSV", "missing feature column "+name)
		}
		featureIdx[i] = idx
	}
	targetIdx, ok := colIndex[targetCol]
	if !ok {
		return nil, errors.NewValueError("dataset.ReadCSV", "missing target column "+targetCol)
	}

	var rows [][]float64
	var targets []float64
	dropped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV record")
		}

		target := parseCell(record, targetIdx)
		if math.IsNaN(target) {
			dropped++
			continue
		}

		row := make([]float64, len(featureIdx))
		for j, idx := range featureIdx {
			row[j] = parseCell(record, idx)
		}
		rows = append(rows, row)
		targets = append(targets, target)
	}

	if len(rows) == 0 {
		return nil, errors.NewValueError("dataset.ReadCSV", "no usable rows in CSV input")
	}

	filled := fillMedians(rows)

	n, k := len(rows), len(featureCols)
	x := mat.NewDense(n, k, nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}
	y := mat.NewVecDense(n, targets)

	slog.Info("dataset loaded",
		slog.String(kLog.ComponentKey, "dataset"),
		slog.Int(kLog.SamplesKey, n),
		slog.Int(kLog.FeaturesKey, k),
		slog.Int("data.rows_dropped", dropped),
		slog.Int("data.values_median_filled", filled),
	)

	return New(x, y, featureCols)
}

// LoadFeatureCSV reads only the selected feature columns of a CSV file,
// with the same cell interpretation and median fill as LoadCSV. Used for
// prediction inputs, which carry no target column.
func LoadFeatureCSV(path string, featureCols []string) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer file.Close()

	if len(featureCols) == 0 {
		return nil, errors.NewValueError("dataset.LoadFeatureCSV", "no feature columns selected")
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	featureIdx := make([]int, len(featureCols))
	for i, name := range featureCols {
		idx, ok := colIndex[name]
		if !ok {
			return nil, errors.NewValueError("dataset.LoadFeatureCSV", "missing feature column "+name)
		}
		featureIdx[i] = idx
	}

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV record")
		}

		row := make([]float64, len(featureIdx))
		for j, idx := range featureIdx {
			row[j] = parseCell(record, idx)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.NewValueError("dataset.LoadFeatureCSV", "no usable rows in CSV input")
	}

	fillMedians(rows)

	x := mat.NewDense(len(rows), len(featureCols), nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}
	return x, nil
}

// parseCell converts a CSV cell to float64. Yes/No become 1/0; anything that
// does not parse becomes NaN and is handled by the caller.
func parseCell(record []string, idx int) float64 {
	if idx >= len(record) {
		return math.NaN()
	}
	cell := strings.TrimSpace(record[idx])
	switch strings.ToLower(cell) {
	case "":
		return math.NaN()
	case "yes":
		return 1
	case "no":
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// fillMedians replaces NaN feature values with their column median, in place.
// It returns the number of values filled.
func fillMedians(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}
	k := len(rows[0])
	filled := 0

	for j := 0; j < k; j++ {
		var present []float64
		for _, row := range rows {
			if !math.IsNaN(row[j]) {
				present = append(present, row[j])
			}
		}

		median := 0.0
		if len(present) > 0 {
			sort.Float64s(present)
			mid := len(present) / 2
			if len(present)%2 == 0 {
				median = (present[mid-1] + present[mid]) / 2
			} else {
				median = present[mid]
			}
		}

		for _, row := range rows {
			if math.IsNaN(row[j]) {
				row[j] = median
				filled++
			}
		}
	}
	return filled
}
