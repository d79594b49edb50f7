package history

import (
	"time"

	"remaster/internal/batch"
)

// FailedEntry names one target that failed and why.
type FailedEntry struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Results splits a run's targets into what worked and what failed.
type Results struct {
	Successful []string      `json:"successful"`
	Failed     []FailedEntry `json:"failed"`
}

// Record is one completed mastering run.
type Record struct {
	ID              int64     `json:"-"`
	Timestamp       time.Time `json:"timestamp"`
	Preset          string    `json:"preset"`
	ReferenceFile   string    `json:"reference_file"`
	TargetFiles     []string  `json:"target_files"`
	Results         Results   `json:"results"`
	OutputDirectory string    `json:"output_directory"`
}

// NewRecord summarizes a batch result into a history record.
func NewRecord(presetName, reference string, targets []string, result *batch.Result, outputDir string) Record {
	rec := Record{
		Timestamp:       time.Now().UTC(),
		Preset:          presetName,
		ReferenceFile:   reference,
		TargetFiles:     targets,
		OutputDirectory: outputDir,
	}
	for _, outcome := range result.Successful {
		rec.Results.Successful = append(rec.Results.Successful, outcome.Item.Target)
	}
	for _, outcome := range result.Failed {
		rec.Results.Failed = append(rec.Results.Failed, FailedEntry{
			File:  outcome.Item.Target,
			Error: outcome.Err,
		})
	}
	return rec
}
