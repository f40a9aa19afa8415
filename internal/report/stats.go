package report

import "sort"

// Summary holds the aggregate statistics for one metric, computed over all
// samples with outliers included.
type Summary struct {
	Metric string
	Mean   float64
	Median float64
}

// Summarize computes mean and median per metric, in MetricNames order.
// No filtering is applied; outliers count like any other sample.
func Summarize(records []Record) []Summary {
	summaries := make([]Summary, 0, len(MetricNames))
	for _, metric := range MetricNames {
		values := make([]float64, 0, len(records))
		for _, r := range records {
			values = append(values, metricValue(r, metric))
		}
		summaries = append(summaries, Summary{
			Metric: metric,
			Mean:   mean(values),
			Median: median(values),
		})
	}
	return summaries
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
