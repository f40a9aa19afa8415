// Package services defines the shared error taxonomy for external
// collaborators and pipeline components.
//
// Errors are tagged with sentinel markers (input, model load, configuration,
// external tool) via Wrap so callers can classify failures with errors.Is
// without inspecting message text. Input and configuration errors always
// abort a run; model-load and tool errors are scoped to one model's pass and
// honor the continue-on-error policy.
package services
