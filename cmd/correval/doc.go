// Command correval evaluates text-correction models against a CSV dataset
// and writes per-model report files.
package main
