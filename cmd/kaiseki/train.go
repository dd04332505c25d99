package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaiseki-ml/kaiseki/dataset"
	"github.com/kaiseki-ml/kaiseki/inspection"
	"github.com/kaiseki-ml/kaiseki/linear"
	"github.com/kaiseki-ml/kaiseki/metrics"
	kLog "github.com/kaiseki-ml/kaiseki/pkg/log"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit a rating model on a CSV dataset and report metrics",
	Long: `Train loads a cleaned CSV dataset, splits it deterministically into
train and test subsets, fits a linear regression model by the normal
equation, evaluates it on the held-out rows and prints the feature
importance table. The fitted weights are written to a flat text file,
one coefficient per line, bias first.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().String("data", "", "path to the CSV dataset (required)")
	trainCmd.Flags().String("target", "Aggregate rating", "target column name")
	trainCmd.Flags().StringSlice("features", nil, "feature column names, in order (required)")
	trainCmd.Flags().Float64("test-size", 0.2, "fraction of rows held out for testing, in (0,1)")
	trainCmd.Flags().Int64("seed", 42, "seed for the deterministic split")
	trainCmd.Flags().String("weights-out", "model_weights.txt", "output path for the fitted weights")

	for _, key := range []string{"data", "target", "features", "test-size", "seed", "weights-out"} {
		_ = viper.BindPFlag(key, trainCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	dataPath := viper.GetString("data")
	target := viper.GetString("target")
	features := viper.GetStringSlice("features")
	testSize := viper.GetFloat64("test-size")
	seed := viper.GetInt64("seed")
	weightsOut := viper.GetString("weights-out")

	if dataPath == "" {
		return fmt.Errorf("--data is required")
	}
	if len(features) == 0 {
		return fmt.Errorf("--features is required")
	}

	ds, err := dataset.LoadCSV(dataPath, features, target)
	if err != nil {
		return err
	}

	train, test, err := dataset.TrainTestSplit(ds, testSize, seed)
	if err != nil {
		return err
	}
	slog.Info("dataset split",
		slog.String(kLog.OperationKey, "split"),
		slog.Int(kLog.TrainSamplesKey, train.NumSamples()),
		slog.Int(kLog.TestSamplesKey, test.NumSamples()),
		slog.Int64(kLog.SeedKey, seed),
	)

	model := linear.NewLinearRegression()
	start := time.Now()
	if err := model.Fit(train.X, train.Y); err != nil {
		return err
	}
	slog.Info("model fitted",
		slog.String(kLog.ModelNameKey, "LinearRegression"),
		slog.String(kLog.OperationKey, "fit"),
		slog.Int(kLog.SamplesKey, train.NumSamples()),
		slog.Int(kLog.FeaturesKey, train.NumFeatures()),
		slog.Int64(kLog.DurationMSKey, time.Since(start).Milliseconds()),
	)

	yPred, err := model.Predict(test.X)
	if err != nil {
		return err
	}

	result, err := metrics.Evaluate(test.Y, yPred)
	if err != nil {
		return err
	}
	slog.Info("model evaluated",
		slog.String(kLog.OperationKey, "evaluate"),
		slog.Float64(kLog.MSEKey, result.MSE),
		slog.Float64(kLog.RMSEKey, result.RMSE),
		slog.Float64(kLog.MAEKey, result.MAE),
		slog.Float64(kLog.R2Key, result.R2),
	)

	fmt.Printf("MSE:  %.4f\n", result.MSE)
	fmt.Printf("RMSE: %.4f\n", result.RMSE)
	fmt.Printf("MAE:  %.4f\n", result.MAE)
	fmt.Printf("R²:   %.4f\n", result.R2)

	table, err := inspection.RankFeatures(model, features)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(table)

	if err := model.SaveWeights(weightsOut); err != nil {
		return err
	}
	fmt.Printf("\nWeights written to %s\n", weightsOut)

	return nil
}
