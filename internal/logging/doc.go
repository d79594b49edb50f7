// Package logging assembles the structured slog loggers used across
// remaster.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so batch code automatically
// tags log lines with run and work item identifiers. Prefer these
// constructors over hand-rolled slog setup so every component emits data with
// the same shape.
package logging
