package report

// interval is the valid closed range for one metric. Values outside it are
// counted as outliers for data-quality review, never excluded from stats.
type interval struct {
	lo, hi float64
}

// outlierOrder fixes the report row order; the intervals mirror each
// metric's conventional range.
var (
	outlierOrder     = []string{"BLEU", "WER", "CER", "Cosine Similarity"}
	outlierIntervals = map[string]interval{
		"BLEU":              {0, 100},
		"WER":               {0, 1},
		"CER":               {0, 1},
		"Cosine Similarity": {0, 1},
	}
)

// TotalOutliersName labels the synthetic row counting samples that violate
// at least one interval.
const TotalOutliersName = "Total Outliers"

// OutlierCount is one row of the outlier report.
type OutlierCount struct {
	Metric string
	Count  int
}

// CountOutliers tallies per-metric interval violations plus a total of
// samples violating any interval. A sample breaking several intervals
// counts once toward the total.
func CountOutliers(records []Record) []OutlierCount {
	perMetric := make(map[string]int, len(outlierOrder))
	total := 0
	for _, r := range records {
		anyViolation := false
		for metric, iv := range outlierIntervals {
			v := metricValue(r, metric)
			if v < iv.lo || v > iv.hi {
				perMetric[metric]++
				anyViolation = true
			}
		}
		if anyViolation {
			total++
		}
	}

	counts := make([]OutlierCount, 0, len(outlierOrder)+1)
	for _, metric := range outlierOrder {
		counts = append(counts, OutlierCount{Metric: metric, Count: perMetric[metric]})
	}
	counts = append(counts, OutlierCount{Metric: TotalOutliersName, Count: total})
	return counts
}
