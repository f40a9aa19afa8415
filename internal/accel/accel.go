// Package accel resolves the execution device preference for generation.
//
// Detection is a best-effort probe for NVIDIA device nodes; it never fails,
// and the model host remains free to override the hint. Absence of an
// accelerator always degrades to cpu.
package accel

import "os"

var nvidiaProbePaths = []string{
	"/dev/nvidia0",
	"/dev/nvidiactl",
}

// Resolve maps a configured device preference to a concrete hint. "cuda"
// and "cpu" pass through; anything else (normally "auto") probes.
func Resolve(device string) string {
	switch device {
	case "cuda", "cpu":
		return device
	}
	return Detect()
}

// Detect returns "cuda" when an NVIDIA device node exists, else "cpu".
func Detect() string {
	return detectFrom(nvidiaProbePaths)
}

func detectFrom(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return "cuda"
		}
	}
	return "cpu"
}
