// Package dataset reads the tabular evaluation input.
//
// The input is a CSV with a header row containing at least the configured
// reference and prediction columns. Rows where either value is missing or
// empty are dropped; surviving rows keep their original relative order, and
// the two returned sequences stay index-aligned for the rest of the run.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"correval/internal/services"
)

// Set holds the loaded evaluation samples. References and Predictions are
// index-aligned and read-only after Load returns.
type Set struct {
	References  []string
	Predictions []string
}

// Len returns the number of samples.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.References)
}

// Load parses the CSV at path and extracts the two named columns.
func Load(path, referenceColumn, predictionColumn string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "dataset", "open", path, err)
	}
	defer file.Close()

	set, err := read(file, referenceColumn, predictionColumn)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "dataset", "parse", path, err)
	}
	return set, nil
}

func read(r io.Reader, referenceColumn, predictionColumn string) (*Set, error) {
	reader := csv.NewReader(r)
	// Ragged rows are treated as rows with missing values, not parse errors.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	refIdx, predIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case referenceColumn:
			refIdx = i
		case predictionColumn:
			predIdx = i
		}
	}
	if refIdx < 0 {
		return nil, fmt.Errorf("column %q not found", referenceColumn)
	}
	if predIdx < 0 {
		return nil, fmt.Errorf("column %q not found", predictionColumn)
	}

	set := &Set{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		ref := fieldAt(record, refIdx)
		pred := fieldAt(record, predIdx)
		if ref == "" || pred == "" {
			continue
		}
		set.References = append(set.References, ref)
		set.Predictions = append(set.Predictions, pred)
	}
	return set, nil
}

func fieldAt(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
