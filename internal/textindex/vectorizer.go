package textindex

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters, the same shape of
// token the reference vector space was built from.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer maps text into a TF-IDF vector space. It must be fit exactly
// once per run and then shared, so every model is scored in an identical
// space.
type Vectorizer struct {
	vocab  map[string]int
	idf    []float64
	fitted bool
}

// NewVectorizer returns an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{vocab: make(map[string]int)}
}

// Fit learns the vocabulary and inverse document frequencies from docs.
// Fitting twice is an error: downstream cosine scores are only comparable
// across models when they share one vector space.
func (v *Vectorizer) Fit(docs []string) error {
	if v.fitted {
		return errors.New("textindex: vectorizer already fitted")
	}
	if len(docs) == 0 {
		return errors.New("textindex: no documents to fit")
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, token := range Tokenize(doc) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}
	if len(df) == 0 {
		return errors.New("textindex: documents produced no tokens")
	}

	v.idf = make([]float64, len(df))
	n := float64(len(docs))
	for token, count := range df {
		idx := len(v.vocab)
		v.vocab[token] = idx
		// Smoothed idf, matching the reference implementation's weighting.
		v.idf[idx] = math.Log((1+n)/(1+float64(count))) + 1
	}
	v.fitted = true
	return nil
}

// Fitted reports whether Fit has run.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// VocabularySize returns the number of distinct terms learned during Fit.
func (v *Vectorizer) VocabularySize() int { return len(v.vocab) }

// Transform projects text into the fitted vector space. Tokens outside the
// vocabulary are ignored; text with no known tokens yields a zero vector.
func (v *Vectorizer) Transform(text string) Vector {
	weights := make(map[int]float64)
	for _, token := range Tokenize(text) {
		if idx, ok := v.vocab[token]; ok {
			weights[idx] += v.idf[idx]
		}
	}
	var norm float64
	for _, w := range weights {
		norm += w * w
	}
	return Vector{weights: weights, norm: math.Sqrt(norm)}
}

// Tokenize lowercases text and extracts vocabulary-shaped tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vector is a sparse TF-IDF representation of one text.
type Vector struct {
	weights map[int]float64
	norm    float64
}

// Zero reports whether the vector has no weight.
func (v Vector) Zero() bool { return v.norm == 0 }

// Cosine computes the cosine similarity between two vectors, clamped to
// [0, 1]. Either vector being zero yields 0.
func Cosine(a, b Vector) float64 {
	if a.Zero() || b.Zero() {
		return 0
	}
	small, large := a.weights, b.weights
	if len(large) < len(small) {
		small, large = large, small
	}
	var dot float64
	for idx, w := range small {
		if other, ok := large[idx]; ok {
			dot += w * other
		}
	}
	if dot <= 0 {
		return 0
	}
	sim := dot / (a.norm * b.norm)
	if sim > 1 {
		return 1
	}
	return sim
}
