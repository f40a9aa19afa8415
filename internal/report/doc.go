// Package report aggregates per-sample metric records into the three
// per-model output tables: a detailed per-sample CSV, a mean/median summary
// CSV, and an outlier-count CSV.
//
// Aggregation is pure: the same record set always produces byte-identical
// files. Outliers are counted against each metric's conventional interval
// but never removed from the summary statistics.
package report
