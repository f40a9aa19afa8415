// Package logging assembles the structured slog loggers used across the
// evaluation pipeline.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and standardizes attribute keys (component, run_id, model) so
// every pipeline step emits data with the same shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
