package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"correval/internal/models"
	"correval/internal/report"
)

// renderSummaryTable shows one model's mean/median per metric, mirroring the
// summary CSV's column names so console and file output read alike.
func renderSummaryTable(summaries []report.Summary) string {
	tw := newTable("Metric", "Mean (All Data)", "Median (All Data)")
	for _, s := range summaries {
		tw.AppendRow(table.Row{s.Metric, formatScore(s.Mean), formatScore(s.Median)})
	}
	rightAlign(tw, 2, 3)
	return tw.Render()
}

// renderOutlierTable shows one model's interval-violation counts, ending
// with the Total Outliers row.
func renderOutlierTable(counts []report.OutlierCount) string {
	tw := newTable("Metric", "Outlier Count")
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Metric, strconv.Itoa(c.Count)})
	}
	rightAlign(tw, 2)
	return tw.Render()
}

// renderModelTable lists discovered model directories with the generation
// length each pass will use.
func renderModelTable(found []models.Descriptor) string {
	tw := newTable("Model", "Max Length", "Path")
	for _, desc := range found {
		tw.AppendRow(table.Row{desc.Name, strconv.Itoa(desc.MaxGenerationLength), desc.Path})
	}
	rightAlign(tw, 2)
	return tw.Render()
}

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)
	return tw
}

// rightAlign right-aligns the 1-based numeric columns; headers stay left.
func rightAlign(tw table.Writer, columns ...int) {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, n := range columns {
		configs = append(configs, table.ColumnConfig{
			Number:      n,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
}

// formatScore renders metric values with fixed precision for console tables;
// the CSVs keep full precision.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
