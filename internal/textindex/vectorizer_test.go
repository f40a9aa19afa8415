package textindex_test

import (
	"math"
	"testing"

	"correval/internal/textindex"
)

func TestIdenticalTextHasCosineOne(t *testing.T) {
	ix, err := textindex.Build(
		[]string{"the quick brown fox", "jumped over the lazy dog"},
		[]string{"the kwik brown fox", "jumpd over the lasy dog"},
	)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	sim, err := ix.Similarity(0, "the quick brown fox")
	if err != nil {
		t.Fatalf("Similarity returned error: %v", err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Fatalf("expected cosine 1 for identical text, got %v", sim)
	}
}

func TestCosineStaysInUnitInterval(t *testing.T) {
	refs := []string{"alpha beta gamma", "delta epsilon", "zeta eta theta iota"}
	preds := []string{"alpha beta", "epsiln delta", "completely unrelated words"}
	ix, err := textindex.Build(refs, preds)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	hyps := []string{"alpha beta gamma", "unrelated", "", "zeta zeta zeta", "delta epsilon extra"}
	for i := range refs {
		for _, hyp := range hyps {
			sim, err := ix.Similarity(i, hyp)
			if err != nil {
				t.Fatalf("Similarity returned error: %v", err)
			}
			if sim < 0 || sim > 1 {
				t.Fatalf("cosine out of range for ref %d hyp %q: %v", i, hyp, sim)
			}
		}
	}
}

func TestDisjointVocabularyScoresZero(t *testing.T) {
	ix, err := textindex.Build([]string{"apple banana"}, []string{"cherry mango"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	sim, err := ix.Similarity(0, "cherry mango")
	if err != nil {
		t.Fatalf("Similarity returned error: %v", err)
	}
	if sim != 0 {
		t.Fatalf("expected 0 for disjoint vocabulary, got %v", sim)
	}
}

func TestVectorizerFitsExactlyOnce(t *testing.T) {
	v := textindex.NewVectorizer()
	if err := v.Fit([]string{"one document here"}); err != nil {
		t.Fatalf("first Fit failed: %v", err)
	}
	if err := v.Fit([]string{"another document"}); err == nil {
		t.Fatal("expected second Fit to fail")
	}
	if !v.Fitted() {
		t.Fatal("vectorizer should remain fitted")
	}
}

func TestTokenizeDropsShortAndNonWordTokens(t *testing.T) {
	tokens := textindex.Tokenize("A cat, a DOG -- x y12!")
	want := []string{"cat", "dog", "y12"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("got %v want %v", tokens, want)
		}
	}
}

func TestSimilarityOutOfRangeIndex(t *testing.T) {
	ix, err := textindex.Build([]string{"alpha beta"}, []string{"alpha"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if _, err := ix.Similarity(5, "alpha"); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestEmptyCorpusFails(t *testing.T) {
	if _, err := textindex.Build(nil, nil); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}

func TestVocabularySizeCountsDistinctTerms(t *testing.T) {
	v := textindex.NewVectorizer()
	if err := v.Fit([]string{"alpha beta", "beta gamma"}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if got := v.VocabularySize(); got != 3 {
		t.Fatalf("VocabularySize = %d, want 3", got)
	}

	ix, err := textindex.Build([]string{"alpha beta"}, []string{"beta gamma"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := ix.VocabularySize(); got != 3 {
		t.Fatalf("Index.VocabularySize = %d, want 3", got)
	}
}

func TestTransformUnknownTokensYieldsZeroVector(t *testing.T) {
	v := textindex.NewVectorizer()
	if err := v.Fit([]string{"alpha beta"}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if !v.Transform("unrelated words only").Zero() {
		t.Fatal("expected zero vector for out-of-vocabulary text")
	}
	if v.Transform("alpha").Zero() {
		t.Fatal("expected non-zero vector for known token")
	}
}
