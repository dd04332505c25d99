// Package kaiseki is a restaurant-analytics toolkit built around a
// closed-form linear regression core.
//
// The core pipeline is
//
//	dataset.TrainTestSplit -> linear.Fit -> linear.Predict ->
//	metrics.Evaluate -> inspection.RankFeatures
//
// Every stage is a pure function over immutable inputs: the splitter is a
// deterministic function of (dataset, fraction, seed), the regression engine
// solves the normal equation with an SVD pseudo-inverse, the metrics
// calculator produces MSE, RMSE, MAE and R², and feature attribution ranks
// the learned weights by magnitude. Multiple models may be fit concurrently
// on independent datasets; no package holds process-wide mutable state
// beyond the configurable warning handler in pkg/errors.
//
// CSV loading and cleaning live in the dataset package as a collaborator in
// front of the core; the core packages assume complete numeric data.
package kaiseki
