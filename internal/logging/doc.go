// Package logging assembles structured slog loggers and formatting helpers
// used across hlsmill.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so orchestration code tags log
// lines with job IDs and pipeline step names consistently. The console
// handler renders the single timestamped diagnostic lines operators see
// during a transcode run. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
