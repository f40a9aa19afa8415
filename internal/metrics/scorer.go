package metrics

import (
	"correval/internal/textindex"
)

// Scores holds the four per-sample quality metrics.
type Scores struct {
	WER    float64
	CER    float64
	BLEU   float64
	Cosine float64
}

// Scorer computes per-sample metrics against the shared vector space. The
// index is read-only; a Scorer is safe to reuse across models.
type Scorer struct {
	index *textindex.Index
}

// NewScorer wraps the precomputed reference index.
func NewScorer(index *textindex.Index) *Scorer {
	return &Scorer{index: index}
}

// Score compares corrected text against the reference at sample index i.
// Each metric is independent; no cross-sample state is touched.
func (s *Scorer) Score(i int, reference, corrected string) (Scores, error) {
	cosine, err := s.index.Similarity(i, corrected)
	if err != nil {
		return Scores{}, err
	}
	return Scores{
		WER:    WordErrorRate(reference, corrected),
		CER:    CharErrorRate(reference, corrected),
		BLEU:   BLEU(reference, corrected),
		Cosine: cosine,
	}, nil
}
