package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output filename suffixes, keyed by the model directory name prefix.
const (
	DetailedSuffix = "_detailed_evaluation.csv"
	SummarySuffix  = "_summary_evaluation.csv"
	OutliersSuffix = "_outlier_counts.csv"
)

// Writer persists the three per-model report tables into a directory.
type Writer struct {
	dir string
}

// NewWriter writes reports into dir, which must already exist.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// DetailedPath returns the detailed table location for a model.
func (w *Writer) DetailedPath(model string) string {
	return filepath.Join(w.dir, model+DetailedSuffix)
}

// SummaryPath returns the summary table location for a model.
func (w *Writer) SummaryPath(model string) string {
	return filepath.Join(w.dir, model+SummarySuffix)
}

// OutliersPath returns the outlier-count table location for a model.
func (w *Writer) OutliersPath(model string) string {
	return filepath.Join(w.dir, model+OutliersSuffix)
}

// WriteAll writes the detailed, summary, and outlier tables for one model
// from its full record set. Callers invoke it only after every sample is
// scored, so a failed pass leaves no partial files behind.
func (w *Writer) WriteAll(model string, records []Record) error {
	if err := w.writeDetailed(model, records); err != nil {
		return err
	}
	if err := w.writeSummary(model, Summarize(records)); err != nil {
		return err
	}
	return w.writeOutliers(model, CountOutliers(records))
}

func (w *Writer) writeDetailed(model string, records []Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{
		"Model", "True Transcription", "Original Prediction", "Corrected Output",
		"WER", "CER", "BLEU", "Cosine Similarity",
	})
	for _, r := range records {
		rows = append(rows, []string{
			r.Model, r.Reference, r.Prediction, r.Corrected,
			formatFloat(r.WER), formatFloat(r.CER), formatFloat(r.BLEU), formatFloat(r.Cosine),
		})
	}
	return w.writeCSV(w.DetailedPath(model), rows)
}

func (w *Writer) writeSummary(model string, summaries []Summary) error {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, []string{"Metric", "Mean (All Data)", "Median (All Data)"})
	for _, s := range summaries {
		rows = append(rows, []string{s.Metric, formatFloat(s.Mean), formatFloat(s.Median)})
	}
	return w.writeCSV(w.SummaryPath(model), rows)
}

func (w *Writer) writeOutliers(model string, counts []OutlierCount) error {
	rows := make([][]string, 0, len(counts)+1)
	rows = append(rows, []string{"Metric", "Outlier Count"})
	for _, c := range counts {
		rows = append(rows, []string{c.Metric, strconv.Itoa(c.Count)})
	}
	return w.writeCSV(w.OutliersPath(model), rows)
}

func (w *Writer) writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("report: flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}

// formatFloat uses the shortest representation that round-trips, keeping
// report output deterministic for identical inputs.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
