package eval

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"correval/internal/config"
	"correval/internal/dataset"
	"correval/internal/logging"
	"correval/internal/metrics"
	"correval/internal/models"
	"correval/internal/report"
	"correval/internal/services"
	"correval/internal/textindex"
)

// lockFileName guards the output directory against concurrent runs.
const lockFileName = "correval.lock"

// Client is the model host surface the runner depends on.
type Client interface {
	Health(ctx context.Context) error
	LoadModel(ctx context.Context, dir string) (string, error)
	Generate(ctx context.Context, model, input string, maxLength int) (string, error)
	UnloadModel(ctx context.Context, model string) error
}

// ProgressFunc receives per-sample progress while a model pass runs. stage is
// "generate" or "score"; done counts completed samples out of total.
type ProgressFunc func(model, stage string, done, total int)

// Runner executes one full evaluation: load the dataset, build the shared
// vector space, discover models, and run each model's pass in sequence.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	client   Client
	progress ProgressFunc
}

// NewRunner wires a runner. logger may be nil; progress may be nil.
func NewRunner(cfg *config.Config, logger *slog.Logger, client Client, progress ProgressFunc) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "eval"),
		client:   client,
		progress: progress,
	}
}

// ModelResult summarizes one completed model pass.
type ModelResult struct {
	Name         string
	Samples      int
	Elapsed      time.Duration
	Summaries    []report.Summary
	Outliers     []report.OutlierCount
	DetailedPath string
	SummaryPath  string
	OutliersPath string
}

// ModelFailure records a model pass skipped under the continue-on-error
// policy.
type ModelFailure struct {
	Name string
	Err  error
}

// Result is the outcome of a full run.
type Result struct {
	RunID    string
	Samples  int
	Models   []ModelResult
	Failures []ModelFailure
}

// Run executes the evaluation. It returns a non-nil Result whenever the
// run-level stages succeed, even if individual model passes were skipped.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "eval", "prepare", "output directories", err)
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "eval", "lock", lock.Path(), err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "eval", "lock",
			"another run is writing to "+r.cfg.Paths.OutputDir, nil)
	}
	defer lock.Unlock()

	runID := uuid.New().String()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	set, err := dataset.Load(r.cfg.Dataset.Path, r.cfg.Dataset.ReferenceColumn, r.cfg.Dataset.PredictionColumn)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, services.Wrap(services.ErrInput, "eval", "load dataset",
			fmt.Sprintf("no usable samples in %s", r.cfg.Dataset.Path), nil)
	}
	logger.Info("dataset loaded",
		logging.String("path", r.cfg.Dataset.Path),
		logging.Int(logging.FieldSamples, set.Len()))

	index, err := textindex.Build(set.References, set.Predictions)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "eval", "build index", "tf-idf fit", err)
	}
	logger.Debug("similarity index built", logging.Int("vocabulary", index.VocabularySize()))
	scorer := metrics.NewScorer(index)

	descriptors, err := models.Discover(r.cfg.Discovery.Root, models.Options{
		Prefix:           r.cfg.Discovery.Prefix,
		LengthMarker:     r.cfg.Discovery.LengthMarker,
		DefaultMaxLength: r.cfg.Discovery.DefaultMaxLength,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "eval", "discover models", r.cfg.Discovery.Root, err)
	}

	result := &Result{RunID: runID, Samples: set.Len()}
	if len(descriptors) == 0 {
		logger.Info("no matching model directories",
			logging.String("root", r.cfg.Discovery.Root),
			logging.String("prefix", r.cfg.Discovery.Prefix))
		return result, nil
	}

	if err := r.client.Health(ctx); err != nil {
		return nil, err
	}

	writer := report.NewWriter(r.cfg.Paths.OutputDir)
	for _, desc := range descriptors {
		modelLogger := logger.With(logging.String(logging.FieldModel, desc.Name))
		modelResult, err := r.evaluateModel(ctx, modelLogger, writer, scorer, set, desc)
		if err != nil {
			if r.cfg.Evaluation.ContinueOnError && services.ModelScoped(err) && ctx.Err() == nil {
				modelLogger.Error("model pass skipped", logging.Error(err))
				result.Failures = append(result.Failures, ModelFailure{Name: desc.Name, Err: err})
				continue
			}
			return nil, err
		}
		result.Models = append(result.Models, modelResult)
	}

	if len(result.Models) == 0 && len(result.Failures) > 0 {
		return result, services.Wrap(services.ErrExternalTool, "eval", "run",
			fmt.Sprintf("all %d model passes failed", len(result.Failures)), result.Failures[len(result.Failures)-1].Err)
	}
	return result, nil
}

// evaluateModel runs one model's full pass: load, generate every sample in
// order, score every sample, then write all three report files at once.
func (r *Runner) evaluateModel(
	ctx context.Context,
	logger *slog.Logger,
	writer *report.Writer,
	scorer *metrics.Scorer,
	set *dataset.Set,
	desc models.Descriptor,
) (ModelResult, error) {
	start := time.Now()
	logger.Info("evaluating model",
		logging.String("path", desc.Path),
		logging.Int("max_generation_length", desc.MaxGenerationLength))

	modelID, err := r.client.LoadModel(ctx, desc.Path)
	if err != nil {
		return ModelResult{}, err
	}
	defer func() {
		if err := r.client.UnloadModel(context.WithoutCancel(ctx), modelID); err != nil {
			logger.Warn("model unload failed", logging.Error(err))
		}
	}()

	total := set.Len()
	corrected := make([]string, total)
	for i, prediction := range set.Predictions {
		if err := ctx.Err(); err != nil {
			return ModelResult{}, err
		}
		output, err := r.client.Generate(ctx, modelID, prediction, desc.MaxGenerationLength)
		if err != nil {
			return ModelResult{}, err
		}
		corrected[i] = output
		r.report(desc.Name, "generate", i+1, total)
	}

	records := make([]report.Record, total)
	for i := range corrected {
		scores, err := scorer.Score(i, set.References[i], corrected[i])
		if err != nil {
			return ModelResult{}, services.Wrap(services.ErrInput, "eval", "score", desc.Name, err)
		}
		records[i] = report.Record{
			Model:      desc.Name,
			Reference:  set.References[i],
			Prediction: set.Predictions[i],
			Corrected:  corrected[i],
			WER:        scores.WER,
			CER:        scores.CER,
			BLEU:       scores.BLEU,
			Cosine:     scores.Cosine,
		}
		r.report(desc.Name, "score", i+1, total)
	}

	if err := writer.WriteAll(desc.Name, records); err != nil {
		return ModelResult{}, services.Wrap(services.ErrInput, "eval", "write reports", desc.Name, err)
	}

	elapsed := time.Since(start)
	logger.Info("model pass complete",
		logging.Int(logging.FieldSamples, total),
		logging.Duration("elapsed", elapsed))
	summaries := report.Summarize(records)
	for _, s := range summaries {
		logger.Debug("metric summary",
			logging.String(logging.FieldMetric, s.Metric),
			logging.Float64("mean", s.Mean),
			logging.Float64("median", s.Median))
	}
	return ModelResult{
		Name:         desc.Name,
		Samples:      total,
		Elapsed:      elapsed,
		Summaries:    summaries,
		Outliers:     report.CountOutliers(records),
		DetailedPath: writer.DetailedPath(desc.Name),
		SummaryPath:  writer.SummaryPath(desc.Name),
		OutliersPath: writer.OutliersPath(desc.Name),
	}, nil
}

func (r *Runner) report(model, stage string, done, total int) {
	if r.progress != nil {
		r.progress(model, stage, done, total)
	}
}
