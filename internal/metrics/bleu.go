package metrics

import (
	"math"
	"regexp"
	"strings"
)

const bleuMaxOrder = 4

// punctPattern isolates punctuation so "word." and "word ." tokenize alike.
var punctPattern = regexp.MustCompile(`([^\p{L}\p{N}\s])`)

// BLEU computes an n-gram precision score with brevity penalty for a single
// hypothesis against a single reference, scaled 0-100.
//
// This is the per-sample application of a corpus metric (corpus of size 1),
// kept for parity with the prior evaluation pipeline. Orders longer than the
// hypothesis are excluded from the geometric mean, and zero-match orders are
// exponentially smoothed, so short exact matches still score 100.
func BLEU(reference, hypothesis string) float64 {
	refTokens := bleuTokenize(reference)
	hypTokens := bleuTokenize(hypothesis)
	if len(hypTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	var logSum float64
	effOrder := 0
	smooth := 1.0
	for n := 1; n <= bleuMaxOrder; n++ {
		matched, total := clippedMatches(refTokens, hypTokens, n)
		if total == 0 {
			break
		}
		effOrder++
		var precision float64
		if matched == 0 {
			smooth *= 2
			precision = 1 / (smooth * float64(total))
		} else {
			precision = float64(matched) / float64(total)
		}
		logSum += math.Log(precision)
	}
	if effOrder == 0 {
		return 0
	}

	brevity := 1.0
	if len(hypTokens) < len(refTokens) {
		brevity = math.Exp(1 - float64(len(refTokens))/float64(len(hypTokens)))
	}

	return brevity * math.Exp(logSum/float64(effOrder)) * 100
}

// clippedMatches counts hypothesis n-grams, each clipped to its reference
// occurrence count, plus the total number of hypothesis n-grams.
func clippedMatches(refTokens, hypTokens []string, n int) (matched, total int) {
	total = len(hypTokens) - n + 1
	if total <= 0 {
		return 0, 0
	}
	refCounts := countNGrams(refTokens, n)
	for _, gram := range nGrams(hypTokens, n) {
		if refCounts[gram] > 0 {
			refCounts[gram]--
			matched++
		}
	}
	return matched, total
}

func countNGrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for _, gram := range nGrams(tokens, n) {
		counts[gram]++
	}
	return counts
}

func nGrams(tokens []string, n int) []string {
	if len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], "\x1f"))
	}
	return grams
}

func bleuTokenize(text string) []string {
	spaced := punctPattern.ReplaceAllString(normalize(text), " $1 ")
	return strings.Fields(spaced)
}
