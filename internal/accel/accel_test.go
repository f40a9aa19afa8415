package accel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePinnedDevices(t *testing.T) {
	if got := Resolve("cuda"); got != "cuda" {
		t.Fatalf("Resolve(cuda) = %q", got)
	}
	if got := Resolve("cpu"); got != "cpu" {
		t.Fatalf("Resolve(cpu) = %q", got)
	}
}

func TestDetectFromFallsBackToCPU(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nvidia0")
	if got := detectFrom([]string{missing}); got != "cpu" {
		t.Fatalf("expected cpu without device nodes, got %q", got)
	}
}

func TestDetectFromFindsDeviceNode(t *testing.T) {
	dir := t.TempDir()
	node := filepath.Join(dir, "nvidia0")
	if err := os.WriteFile(node, nil, 0o644); err != nil {
		t.Fatalf("create fake node: %v", err)
	}
	if got := detectFrom([]string{filepath.Join(dir, "absent"), node}); got != "cuda" {
		t.Fatalf("expected cuda with device node present, got %q", got)
	}
}
