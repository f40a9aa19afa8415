package metrics

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize applies NFC normalization and collapses runs of whitespace so
// byte-level encoding differences do not show up as errors.
func normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// WordErrorRate computes the word-level edit distance between reference and
// hypothesis divided by the reference word count. Values above 1 are
// possible for pathological hypotheses.
func WordErrorRate(reference, hypothesis string) float64 {
	refWords := strings.Fields(normalize(reference))
	hypWords := strings.Fields(normalize(hypothesis))
	if len(refWords) == 0 {
		if len(hypWords) == 0 {
			return 0
		}
		return float64(len(hypWords))
	}
	dist := levenshtein(refWords, hypWords)
	return float64(dist) / float64(len(refWords))
}

// CharErrorRate is WordErrorRate at rune granularity. Single spaces between
// words count as characters, runs of whitespace do not.
func CharErrorRate(reference, hypothesis string) float64 {
	refRunes := []rune(normalize(reference))
	hypRunes := []rune(normalize(hypothesis))
	if len(refRunes) == 0 {
		if len(hypRunes) == 0 {
			return 0
		}
		return float64(len(hypRunes))
	}
	dist := levenshtein(refRunes, hypRunes)
	return float64(dist) / float64(len(refRunes))
}

// levenshtein returns the minimum number of substitutions, deletions, and
// insertions transforming a into b.
func levenshtein[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
