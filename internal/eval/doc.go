// Package eval orchestrates a full evaluation run over every discovered
// correction model: one shared dataset and vector space, one sequential pass
// per model, three report files per completed pass.
package eval
