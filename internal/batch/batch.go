package batch

import (
	"github.com/google/uuid"

	"remaster/internal/preset"
)

// Status is the terminal state of one work item. There are no retries; a
// failure is recorded and never resubmitted.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// WorkItem is one target/reference pairing submitted to the mastering
// engine. The orchestrator owns the item for the duration of its execution.
type WorkItem struct {
	ID        string
	Target    string
	Reference string

	// Weights is the blend vector the reference was chosen from, empty for
	// single-reference runs. Recorded for reporting only.
	Weights []float64

	Preset    preset.Preset
	OutputDir string
}

// NewWorkItem builds a work item with a fresh identifier.
func NewWorkItem(target, reference string, p preset.Preset, outputDir string) WorkItem {
	return WorkItem{
		ID:        uuid.NewString(),
		Target:    target,
		Reference: reference,
		Preset:    p,
		OutputDir: outputDir,
	}
}

// Outcome is produced exactly once per work item.
type Outcome struct {
	Item        WorkItem
	Status      Status
	Err         string
	OutputPaths []string
}

// Result aggregates the outcomes of one batch. Order within each list is
// completion order, not submission order.
type Result struct {
	Successful []Outcome
	Failed     []Outcome
	Skipped    []Outcome
}

// Total returns the number of items the batch resolved.
func (r *Result) Total() int {
	return len(r.Successful) + len(r.Failed) + len(r.Skipped)
}

// EventType tags entries on the orchestrator's event stream.
type EventType string

const (
	EventItemStarted  EventType = "item-started"
	EventItemProgress EventType = "item-progress"
	EventItemFinished EventType = "item-finished"
)

// Event is one entry on the orchestrator's event stream. The orchestrator
// performs no printing itself; a presentation layer consumes these.
type Event struct {
	Type      EventType
	ItemID    string
	Target    string
	Status    Status
	Message   string
	Percent   float64
	Completed int
	Total     int
}
