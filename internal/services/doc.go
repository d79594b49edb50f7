// Package services defines shared utilities consumed by the classifier, the
// batch orchestrator, and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep classification
//     failures distinguishable from per-item processing failures.
//   - Context helpers that stamp run and work item identifiers for logging.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across the system.
package services
