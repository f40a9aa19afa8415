package metrics_test

import (
	"math"
	"testing"

	"correval/internal/metrics"
	"correval/internal/textindex"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWordErrorRate(t *testing.T) {
	cases := []struct {
		ref, hyp string
		want     float64
	}{
		{"the cat sat", "the cat sat", 0},
		{"the cat sat", "the kat sat", 1.0 / 3},
		{"the cat sat", "cat sat", 1.0 / 3},
		{"the cat sat", "the big cat sat", 1.0 / 3},
		{"one", "completely different words here", 4},
		{"a b", "  a   b  ", 0}, // whitespace runs collapse
	}
	for _, tc := range cases {
		got := metrics.WordErrorRate(tc.ref, tc.hyp)
		if !almostEqual(got, tc.want) {
			t.Fatalf("WER(%q, %q) = %v, want %v", tc.ref, tc.hyp, got, tc.want)
		}
	}
}

func TestWordErrorRateCanExceedOne(t *testing.T) {
	got := metrics.WordErrorRate("short", "a very long unrelated hypothesis output")
	if got <= 1 {
		t.Fatalf("expected WER above 1 for pathological output, got %v", got)
	}
}

func TestCharErrorRate(t *testing.T) {
	if got := metrics.CharErrorRate("abc", "abc"); got != 0 {
		t.Fatalf("identical CER = %v, want 0", got)
	}
	// One substitution over four characters.
	if got := metrics.CharErrorRate("abcd", "abed"); !almostEqual(got, 0.25) {
		t.Fatalf("CER = %v, want 0.25", got)
	}
	// NFC normalization: decomposed and precomposed e-acute are equal.
	if got := metrics.CharErrorRate("café", "café"); got != 0 {
		t.Fatalf("CER across NFC forms = %v, want 0", got)
	}
}

func TestBLEUExactMatchScoresHundred(t *testing.T) {
	for _, text := range []string{
		"the quick brown fox jumped over the lazy dog",
		"short one", // shorter than the max n-gram order
	} {
		got := metrics.BLEU(text, text)
		if !almostEqual(got, 100) {
			t.Fatalf("BLEU(%q, %q) = %v, want 100", text, text, got)
		}
	}
}

func TestBLEUBounds(t *testing.T) {
	cases := [][2]string{
		{"the quick brown fox", "the quick brawn fax"},
		{"a b c d e f", "a b c"},
		{"hello world", "completely unrelated"},
		{"one two three four five", "one two three four five six seven"},
	}
	for _, tc := range cases {
		got := metrics.BLEU(tc[0], tc[1])
		if got < 0 || got > 100 {
			t.Fatalf("BLEU(%q, %q) = %v out of [0, 100]", tc[0], tc[1], got)
		}
	}
}

func TestBLEUEmptyHypothesisIsZero(t *testing.T) {
	if got := metrics.BLEU("reference text", ""); got != 0 {
		t.Fatalf("BLEU with empty hypothesis = %v, want 0", got)
	}
}

func TestBLEUPunctuationTokenizedSeparately(t *testing.T) {
	// "end." and "end ." must tokenize identically.
	if got := metrics.BLEU("this is the end.", "this is the end ."); !almostEqual(got, 100) {
		t.Fatalf("punctuation spacing changed the score: %v", got)
	}
}

func TestScorerExactMatchSample(t *testing.T) {
	refs := []string{"the quick brown fox jumped", "hello there world"}
	preds := []string{"the kwik brown fox jumpd", "helo there world"}
	ix, err := textindex.Build(refs, preds)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	scorer := metrics.NewScorer(ix)
	scores, err := scorer.Score(0, refs[0], refs[0])
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if scores.WER != 0 {
		t.Fatalf("WER = %v, want 0", scores.WER)
	}
	if scores.CER != 0 {
		t.Fatalf("CER = %v, want 0", scores.CER)
	}
	if !almostEqual(scores.BLEU, 100) {
		t.Fatalf("BLEU = %v, want 100", scores.BLEU)
	}
	if !almostEqual(scores.Cosine, 1) {
		t.Fatalf("Cosine = %v, want 1", scores.Cosine)
	}
}

func TestScorerPropagatesIndexErrors(t *testing.T) {
	ix, err := textindex.Build([]string{"only sample"}, []string{"only sample"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if _, err := metrics.NewScorer(ix).Score(3, "x", "y"); err == nil {
		t.Fatal("expected error for out-of-range sample index")
	}
}
