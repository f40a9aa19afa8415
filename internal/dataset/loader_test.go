package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"correval/internal/dataset"
	"correval/internal/services"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadDropsIncompleteRows(t *testing.T) {
	path := writeCSV(t, `True Transcription,Predicted Transcription
the cat sat,the kat sat
hello world,helo world
,missing reference
only reference,
good line,god line
`)

	set, err := dataset.Load(path, "True Transcription", "Predicted Transcription")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", set.Len())
	}
	if set.References[2] != "good line" || set.Predictions[2] != "god line" {
		t.Fatalf("order not preserved: %v / %v", set.References, set.Predictions)
	}
}

func TestLoadThreeValidOneMissingPrediction(t *testing.T) {
	path := writeCSV(t, `True Transcription,Predicted Transcription
a,b
c,d
e,
f,g
`)

	set, err := dataset.Load(path, "True Transcription", "Predicted Transcription")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected exactly 3 samples, got %d", set.Len())
	}
}

func TestLoadKeepsEveryCompleteRow(t *testing.T) {
	path := writeCSV(t, `Predicted Transcription,Extra,True Transcription
pred one,x,ref one
pred two,y,ref two
`)

	set, err := dataset.Load(path, "True Transcription", "Predicted Transcription")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", set.Len())
	}
	if set.References[0] != "ref one" || set.Predictions[0] != "pred one" {
		t.Fatalf("columns mapped incorrectly: %v / %v", set.References, set.Predictions)
	}
}

func TestLoadToleratesRaggedRows(t *testing.T) {
	path := writeCSV(t, `True Transcription,Predicted Transcription
complete,row
short
`)

	set, err := dataset.Load(path, "True Transcription", "Predicted Transcription")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 sample, got %d", set.Len())
	}
}

func TestLoadMissingFileIsInputError(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.csv"), "a", "b")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}

func TestLoadMissingColumnIsInputError(t *testing.T) {
	path := writeCSV(t, "Only Column\nvalue\n")
	_, err := dataset.Load(path, "True Transcription", "Predicted Transcription")
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}
