package log

// Standard attribute keys for pipeline logging. A fixed vocabulary keeps
// training runs comparable in log analysis.

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "split", "evaluate", "rank_features".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "linear", "dataset", "metrics", "inspection".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) processed.
	FeaturesKey = "data.features"

	// TrainSamplesKey and TestSamplesKey describe a train/test partition.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"

	// SeedKey is the seed used for a deterministic split.
	SeedKey = "data.seed"
)

// Evaluation results.
const (
	MSEKey  = "metric.mse"
	RMSEKey = "metric.rmse"
	MAEKey  = "metric.mae"
	R2Key   = "metric.r2"

	// DurationMSKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMSKey = "perf.duration_ms"
)
