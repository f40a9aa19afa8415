package main

import (
	"strings"
	"testing"

	"correval/internal/models"
	"correval/internal/report"
)

func TestRenderSummaryTable(t *testing.T) {
	out := renderSummaryTable([]report.Summary{
		{Metric: "WER", Mean: 0.25, Median: 0.2},
		{Metric: "BLEU", Mean: 87.5, Median: 90},
	})
	for _, want := range []string{"Metric", "Mean (All Data)", "Median (All Data)", "WER", "0.2500", "87.5000", "90.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOutlierTable(t *testing.T) {
	out := renderOutlierTable([]report.OutlierCount{
		{Metric: "BLEU", Count: 0},
		{Metric: "Total Outliers", Count: 2},
	})
	for _, want := range []string{"Outlier Count", "BLEU", "Total Outliers", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("outlier table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderModelTable(t *testing.T) {
	out := renderModelTable([]models.Descriptor{
		{Name: "bart_minimal_ml32", Path: "/models/bart_minimal_ml32", MaxGenerationLength: 32},
	})
	for _, want := range []string{"Model", "Max Length", "bart_minimal_ml32", "32", "/models/bart_minimal_ml32"} {
		if !strings.Contains(out, want) {
			t.Errorf("model table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatScoreFixedPrecision(t *testing.T) {
	if got := formatScore(0.3333333333); got != "0.3333" {
		t.Fatalf("formatScore = %q, want 0.3333", got)
	}
	if got := formatScore(100); got != "100.0000" {
		t.Fatalf("formatScore = %q, want 100.0000", got)
	}
}
