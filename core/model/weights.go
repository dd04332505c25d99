package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ModelWeights is the serialization envelope for a fitted model.
type ModelWeights struct {
	// ModelType is the model kind, e.g. "LinearRegression".
	ModelType string `json:"model_type"`

	// Version is the envelope version, used for compatibility checks.
	Version string `json:"version"`

	// Coefficients are the per-feature weights, bias excluded.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the bias term.
	Intercept float64 `json:"intercept"`

	// Features are the feature names aligned to Coefficients (optional).
	Features []string `json:"features,omitempty"`

	// Metadata carries training statistics such as sample counts.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted records whether the source model was fitted.
	IsFitted bool `json:"is_fitted"`
}

// ToJSON serializes the weights envelope as indented JSON.
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON deserializes a weights envelope from JSON.
func (mw *ModelWeights) FromJSON(data []byte) error {
	return json.Unmarshal(data, mw)
}

// Validate checks the envelope for internal consistency.
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}

	if mw.Version == "" {
		return fmt.Errorf("version is required")
	}

	if !mw.IsFitted && len(mw.Coefficients) > 0 {
		return fmt.Errorf("unfitted model should not have coefficients")
	}

	if mw.IsFitted && len(mw.Coefficients) == 0 {
		return fmt.Errorf("fitted model must have coefficients")
	}

	if len(mw.Features) > 0 && len(mw.Features) != len(mw.Coefficients) {
		return fmt.Errorf("features length %d does not match coefficients length %d",
			len(mw.Features), len(mw.Coefficients))
	}

	return nil
}

// Clone creates a deep copy of the envelope.
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:    mw.ModelType,
		Version:      mw.Version,
		Intercept:    mw.Intercept,
		IsFitted:     mw.IsFitted,
		Coefficients: make([]float64, len(mw.Coefficients)),
		Features:     make([]string, len(mw.Features)),
		Metadata:     make(map[string]interface{}),
	}

	copy(clone.Coefficients, mw.Coefficients)
	copy(clone.Features, mw.Features)

	for k, v := range mw.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}

// WriteWeightsFile writes coefficients as a flat text file, one value per
// line, bias first. The format is independent of the in-memory model
// representation and readable by any tool that parses floats.
func WriteWeightsFile(w io.Writer, bias float64, coefficients []float64) error {
	bw := bufio.NewWriter(w)
	all := append([]float64{bias}, coefficients...)
	for _, v := range all {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("failed to write weight: %w", err)
		}
	}
	return bw.Flush()
}

// ReadWeightsFile parses a flat weight file written by WriteWeightsFile.
// It returns the bias (first value) and the remaining coefficients.
func ReadWeightsFile(r io.Reader) (bias float64, coefficients []float64, err error) {
	scanner := bufio.NewScanner(r)
	var values []float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			return 0, nil, fmt.Errorf("invalid weight value %q: %w", line, perr)
		}
		values = append(values, v)
	}
	if serr := scanner.Err(); serr != nil {
		return 0, nil, fmt.Errorf("failed to read weights: %w", serr)
	}
	if len(values) == 0 {
		return 0, nil, fmt.Errorf("weight file is empty")
	}
	return values[0], values[1:], nil
}

// SaveWeightsFile writes a flat weight file to the given path.
func SaveWeightsFile(filename string, bias float64, coefficients []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return WriteWeightsFile(file, bias, coefficients)
}

// LoadWeightsFile reads a flat weight file from the given path.
func LoadWeightsFile(filename string) (bias float64, coefficients []float64, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadWeightsFile(file)
}
