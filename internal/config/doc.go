// Package config loads, normalizes, and validates correval configuration.
//
// It supplies repository defaults that reproduce the original evaluation
// constants (dataset filename, column names, model prefix, length marker,
// default generation length), expands user paths including tilde shortcuts,
// reads TOML files, and honours the CORREVAL_INFERENCE_URL environment
// fallback for the model host endpoint.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
