// Package metrics computes per-sample quality scores for corrected text:
// word and character error rates, BLEU, and TF-IDF cosine similarity.
//
// Text is NFC-normalized and whitespace-collapsed before the edit-distance
// metrics so encoding artifacts do not inflate error rates. Every metric is
// a pure function of one (reference, hypothesis) pair except cosine, which
// reads the shared read-only vector index.
package metrics
