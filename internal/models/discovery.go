// Package models discovers evaluable model directories.
//
// An evaluable model is a subdirectory of the discovery root whose name
// starts with the configured prefix. The directory name doubles as the model
// ID and output-file prefix, and may encode a generation length via a marker
// substring followed by digits (bart_minimal_ml32 -> 32).
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Descriptor identifies one correction model under evaluation. Descriptors
// are built once during discovery and not mutated afterwards.
type Descriptor struct {
	// Name is the directory name, used as the logical model ID and the
	// prefix of every report file.
	Name string
	// Path is the absolute location of the model directory.
	Path string
	// MaxGenerationLength bounds both input truncation and the generated
	// token budget for this model.
	MaxGenerationLength int
}

// Options controls discovery.
type Options struct {
	Prefix           string
	LengthMarker     string
	DefaultMaxLength int
}

// Discover lists root and returns a descriptor for every matching directory,
// in directory listing order. Zero matches is not an error; callers treat an
// empty result as a clean no-op run.
func Discover(root string, opts Options) ([]Descriptor, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("models: read directory %q: %w", root, err)
	}

	var found []Descriptor
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, opts.Prefix) {
			continue
		}
		maxLength, ok := MaxLengthFromName(name, opts.LengthMarker)
		if !ok {
			maxLength = opts.DefaultMaxLength
		}
		found = append(found, Descriptor{
			Name:                name,
			Path:                filepath.Join(root, name),
			MaxGenerationLength: maxLength,
		})
	}
	return found, nil
}

// MaxLengthFromName extracts a generation length encoded in a directory name.
// The text after the last occurrence of marker must parse as a positive
// integer; anything else reports ok=false so the caller falls back to its
// default. The function never fails on malformed input.
func MaxLengthFromName(name, marker string) (int, bool) {
	if marker == "" {
		return 0, false
	}
	pos := strings.LastIndex(name, marker)
	if pos < 0 {
		return 0, false
	}
	token := name[pos+len(marker):]
	value, err := strconv.Atoi(token)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
