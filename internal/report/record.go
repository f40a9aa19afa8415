package report

// Record is one row of computed scores for a (model, sample) pair. Records
// are write-once and kept in sample order.
type Record struct {
	Model      string
	Reference  string
	Prediction string
	Corrected  string
	WER        float64
	CER        float64
	BLEU       float64
	Cosine     float64
}

// MetricNames lists the four metrics in report order.
var MetricNames = []string{"WER", "CER", "BLEU", "Cosine Similarity"}

// metricValue extracts the named metric from a record.
func metricValue(r Record, metric string) float64 {
	switch metric {
	case "WER":
		return r.WER
	case "CER":
		return r.CER
	case "BLEU":
		return r.BLEU
	case "Cosine Similarity":
		return r.Cosine
	}
	return 0
}
