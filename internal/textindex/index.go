package textindex

import "fmt"

// Index pairs a fitted vectorizer with precomputed reference vectors. It is
// built once per run and read-only afterwards; the same index scores every
// model so cosine values are comparable across models.
type Index struct {
	vectorizer *Vectorizer
	references []Vector
}

// Build fits a fresh vectorizer over the combined corpus (references plus
// baseline predictions, so the vocabulary covers both sides) and precomputes
// one vector per reference, index-aligned with the input.
func Build(references, predictions []string) (*Index, error) {
	vectorizer := NewVectorizer()
	corpus := make([]string, 0, len(references)+len(predictions))
	corpus = append(corpus, references...)
	corpus = append(corpus, predictions...)
	if err := vectorizer.Fit(corpus); err != nil {
		return nil, err
	}

	refs := make([]Vector, len(references))
	for i, text := range references {
		refs[i] = vectorizer.Transform(text)
	}
	return &Index{vectorizer: vectorizer, references: refs}, nil
}

// Similarity transforms text into the shared space and returns its cosine
// similarity against the reference vector at index i.
func (ix *Index) Similarity(i int, text string) (float64, error) {
	if i < 0 || i >= len(ix.references) {
		return 0, fmt.Errorf("textindex: reference %d out of range (have %d)", i, len(ix.references))
	}
	return Cosine(ix.references[i], ix.vectorizer.Transform(text)), nil
}

// Len returns the number of precomputed reference vectors.
func (ix *Index) Len() int { return len(ix.references) }

// VocabularySize returns the number of distinct terms in the shared space.
func (ix *Index) VocabularySize() int { return ix.vectorizer.VocabularySize() }
