// Package textindex builds the shared TF-IDF vector space used for cosine
// similarity scoring.
//
// A Vectorizer is fit once over references and baseline predictions jointly,
// then reused to transform every model's corrected output into the same
// space. TF-IDF weighting uses smoothed inverse document frequency and
// tokens of two or more word characters, lowercased.
package textindex
