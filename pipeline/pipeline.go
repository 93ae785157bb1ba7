// Package pipeline wires the benchmark stages together: load, profile,
// clean, split, encode, then train, evaluate and persist each registry model,
// and finally report.
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/insurebench/config"
	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/dataset"
	"github.com/YuminosukeSato/insurebench/evaluation"
	"github.com/YuminosukeSato/insurebench/persistence"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
	"github.com/YuminosukeSato/insurebench/preprocessing"
	"github.com/YuminosukeSato/insurebench/regression"
	"github.com/YuminosukeSato/insurebench/report"
)

// Entry is one fixed registry slot: a display name and an untrained
// estimator configuration.
type Entry struct {
	Name  string
	Model model.Regressor
}

// Registry enumerates the compared estimators. Every entry runs through the
// identical train, evaluate, persist sequence.
func Registry(seed int64) []Entry {
	return []Entry{
		{Name: "Linear Regression", Model: regression.NewLinearRegression()},
		{Name: "Ridge Regression", Model: regression.NewRidge(1.0)},
		{Name: "Random Forest", Model: regression.NewRandomForest(100, seed)},
	}
}

// Result collects everything a run produced.
type Result struct {
	RunID       string
	Metrics     []evaluation.Metrics
	Table       *report.Table
	BundlePaths []string
	ReportPaths []string
}

// Run executes the full benchmark. The transformer is fitted on the training
// partition only and the already-fitted mapping is applied to the holdout,
// so holdout statistics never leak into the scaler.
func Run(cfg config.Config, logger zerolog.Logger) (*Result, error) {
	runID := uuid.NewString()
	logger = logger.With().Str("run_id", runID).Logger()

	ds, err := dataset.LoadCSV(cfg.DataPath, dataset.InsuranceSchema)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.DataPath).Msg("failed to load dataset")
		return nil, err
	}
	logger.Info().
		Str("path", cfg.DataPath).
		Int("records", ds.NumRows()).
		Int("fields", ds.NumFields()).
		Msg("dataset loaded")

	for _, info := range ds.Info() {
		logger.Debug().
			Str("field", info.Name).
			Str("kind", info.Kind.String()).
			Int("missing", info.Missing).
			Msg("field summary")
	}
	logger.Info().Msg("descriptive statistics\n" + ds.DescribeString())

	clean, cleanReport, err := dataset.Clean(ds)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("imputed_numeric", cleanReport.ImputedNumeric).
		Int("imputed_categorical", cleanReport.ImputedCategorical).
		Int("dropped_rows", cleanReport.DroppedRows).
		Msg("missing values handled")

	trainIdx, testIdx, err := evaluation.SplitIndices(clean.NumRows(), cfg.TestSize, cfg.Seed)
	if err != nil {
		return nil, err
	}
	trainSet, err := clean.Subset(trainIdx)
	if err != nil {
		return nil, err
	}
	testSet, err := clean.Subset(testIdx)
	if err != nil {
		return nil, err
	}

	transformer, err := preprocessing.NewColumnTransformer(clean.Schema(), dataset.TargetField, preprocessing.UnknownIgnore)
	if err != nil {
		return nil, err
	}
	XTrain, err := transformer.FitTransform(trainSet)
	if err != nil {
		return nil, err
	}
	yTrain, err := transformer.TargetVector(trainSet)
	if err != nil {
		return nil, err
	}
	XTest, err := transformer.Transform(testSet)
	if err != nil {
		return nil, err
	}
	yTest, err := transformer.TargetVector(testSet)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("train_rows", trainSet.NumRows()).
		Int("test_rows", testSet.NumRows()).
		Int("features", transformer.NumFeatures()).
		Msg("features encoded")

	if cfg.ModelDir != "" {
		if err := os.MkdirAll(cfg.ModelDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "pipeline.Run: create %s", cfg.ModelDir)
		}
	}

	result := &Result{RunID: runID}
	var preds []report.ModelPredictions
	for _, entry := range Registry(cfg.Seed) {
		start := time.Now()
		if err := entry.Model.Fit(XTrain, yTrain); err != nil {
			return nil, errors.Wrap(err, "pipeline.Run: fit "+entry.Name)
		}
		logger.Info().
			Str("model", entry.Name).
			Dur("duration", time.Since(start)).
			Msg("training complete")

		m, yPred, err := evaluation.Evaluate(entry.Name, entry.Model, XTest, yTest)
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("model", entry.Name).
			Float64("mae", m.MAE).
			Float64("mse", m.MSE).
			Float64("rmse", m.RMSE).
			Float64("r2", m.R2).
			Msg("evaluation complete")

		result.Metrics = append(result.Metrics, m)
		preds = append(preds, report.ModelPredictions{Name: entry.Name, Pred: yPred})

		if cfg.ModelDir != "" {
			bundle := persistence.NewBundle(entry.Name, entry.Model, transformer, m, runID)
			path, err := bundle.Save(cfg.ModelDir)
			if err != nil {
				return nil, err
			}
			result.BundlePaths = append(result.BundlePaths, path)
			logger.Info().Str("model", entry.Name).Str("path", path).Msg("bundle saved")
		}
	}

	result.Table = report.NewTable(result.Metrics)
	logger.Info().Msg("model comparison\n" + result.Table.String())

	if cfg.ReportDir != "" {
		if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "pipeline.Run: create %s", cfg.ReportDir)
		}

		metricsPath := filepath.Join(cfg.ReportDir, "metrics.yaml")
		if err := result.Table.WriteYAML(metricsPath); err != nil {
			return nil, err
		}
		result.ReportPaths = append(result.ReportPaths, metricsPath)

		if cfg.Plots {
			scatterPath := filepath.Join(cfg.ReportDir, "scatter.png")
			if err := report.ScatterGrid(yTest, preds, scatterPath); err != nil {
				return nil, err
			}
			overlayPath := filepath.Join(cfg.ReportDir, "overlay.png")
			if err := report.SortedOverlay(yTest, preds, overlayPath); err != nil {
				return nil, err
			}
			result.ReportPaths = append(result.ReportPaths, scatterPath, overlayPath)
			logger.Info().Strs("paths", []string{scatterPath, overlayPath}).Msg("figures rendered")
		}
	}

	return result, nil
}
