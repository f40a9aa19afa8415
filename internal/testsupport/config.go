package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"correval/internal/config"
)

// Option mutates a test config after the temp-dir defaults are applied.
type Option func(*config.Config)

// NewConfig builds a validated config rooted in per-test temp directories.
// The dataset path points at a file that does not exist yet; use WithSamples
// to create it.
func NewConfig(t *testing.T, opts ...Option) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = ""
	cfg.Dataset.Path = filepath.Join(base, "llm_evaluation_summary.csv")
	cfg.Discovery.Root = filepath.Join(base, "models")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(cfg.Discovery.Root, 0o755); err != nil {
		t.Fatalf("create discovery root: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithSamples writes the dataset file with one (reference, prediction) row
// per entry, under the configured column names.
func WithSamples(samples [][2]string) Option {
	return func(cfg *config.Config) {
		rows := [][]string{{cfg.Dataset.ReferenceColumn, cfg.Dataset.PredictionColumn}}
		for _, s := range samples {
			rows = append(rows, []string{s[0], s[1]})
		}
		writeCSV(cfg.Dataset.Path, rows)
	}
}

// WithModelDirs creates named model directories under the discovery root.
func WithModelDirs(names ...string) Option {
	return func(cfg *config.Config) {
		for _, name := range names {
			if err := os.MkdirAll(filepath.Join(cfg.Discovery.Root, name), 0o755); err != nil {
				panic(err)
			}
		}
	}
}

// WithContinueOnError enables the skip-failed-models policy.
func WithContinueOnError() Option {
	return func(cfg *config.Config) {
		cfg.Evaluation.ContinueOnError = true
	}
}

func writeCSV(path string, rows [][]string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		panic(err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		panic(err)
	}
}
