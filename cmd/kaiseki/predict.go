package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kaiseki-ml/kaiseki/dataset"
	"github.com/kaiseki-ml/kaiseki/linear"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict ratings for a CSV of features using saved weights",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().String("weights", "model_weights.txt", "path to a flat weight file written by train")
	predictCmd.Flags().String("data", "", "path to the CSV with feature columns (required)")
	predictCmd.Flags().StringSlice("features", nil, "feature column names, in the order used at training (required)")
	predictCmd.Flags().String("out", "", "output path for predictions (default: stdout)")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	weightsPath, _ := cmd.Flags().GetString("weights")
	dataPath, _ := cmd.Flags().GetString("data")
	features, _ := cmd.Flags().GetStringSlice("features")
	outPath, _ := cmd.Flags().GetString("out")

	if dataPath == "" {
		return fmt.Errorf("--data is required")
	}
	if len(features) == 0 {
		return fmt.Errorf("--features is required")
	}

	model := linear.NewLinearRegression()
	if err := model.LoadWeights(weightsPath); err != nil {
		return err
	}

	x, err := dataset.LoadFeatureCSV(dataPath, features)
	if err != nil {
		return err
	}

	predictions, err := model.Predict(x)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for i := 0; i < predictions.Len(); i++ {
		if _, err := w.WriteString(strconv.FormatFloat(predictions.AtVec(i), 'g', -1, 64) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
