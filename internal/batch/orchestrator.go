package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"remaster/internal/engine"
	"remaster/internal/fileutil"
	"remaster/internal/logging"
	"remaster/internal/services"
)

// Options control one orchestrator run.
type Options struct {
	// Workers bounds the worker pool. Values at or below 1, or a single
	// item, force strictly sequential execution.
	Workers int

	// Backup copies each target into BackupDir under a timestamped name
	// before processing. A failed backup fails that item, not the batch.
	Backup    bool
	BackupDir string

	// Events receives the orchestrator's event stream in completion order.
	// May be nil.
	Events func(Event)
}

// Orchestrator runs work items against the mastering engine with bounded
// concurrency and per-item failure isolation.
type Orchestrator struct {
	engine engine.Engine
	logger *slog.Logger
}

// New builds an orchestrator around the given engine.
func New(eng engine.Engine, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		engine: eng,
		logger: logging.WithComponent(logger, "batch"),
	}
}

// Run executes every item and aggregates outcomes. Individual item failures
// are recorded in the result and never abort the batch; only setup failures
// such as an uncreatable output directory fail the call itself.
func (o *Orchestrator) Run(ctx context.Context, items []WorkItem, opts Options) (*Result, error) {
	result := &Result{}
	if len(items) == 0 {
		return result, nil
	}

	dirs := make(map[string]struct{})
	for _, item := range items {
		dirs[item.OutputDir] = struct{}{}
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, services.Wrap(services.ErrProcessing, "batch", "run",
				"create output directory "+dir, err)
		}
	}
	if opts.Backup {
		if err := os.MkdirAll(opts.BackupDir, 0o755); err != nil {
			return nil, services.Wrap(services.ErrProcessing, "batch", "run",
				"create backup directory "+opts.BackupDir, err)
		}
	}

	var mu sync.Mutex
	completed := 0
	record := func(outcome Outcome) {
		mu.Lock()
		defer mu.Unlock()
		switch outcome.Status {
		case StatusSuccess:
			result.Successful = append(result.Successful, outcome)
		case StatusSkipped:
			result.Skipped = append(result.Skipped, outcome)
		default:
			result.Failed = append(result.Failed, outcome)
		}
		completed++
		o.emit(opts, Event{
			Type:      EventItemFinished,
			ItemID:    outcome.Item.ID,
			Target:    outcome.Item.Target,
			Status:    outcome.Status,
			Message:   outcome.Err,
			Completed: completed,
			Total:     len(items),
		})
	}

	if opts.Workers <= 1 || len(items) == 1 {
		for _, item := range items {
			record(o.processItem(ctx, item, opts))
		}
		return result, nil
	}

	workers := opts.Workers
	if workers > len(items) {
		workers = len(items)
	}
	queue := make(chan WorkItem)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				record(o.processItem(ctx, item, opts))
			}
		}()
	}
	for _, item := range items {
		queue <- item
	}
	close(queue)
	wg.Wait()

	return result, nil
}

func (o *Orchestrator) processItem(ctx context.Context, item WorkItem, opts Options) Outcome {
	o.emit(opts, Event{Type: EventItemStarted, ItemID: item.ID, Target: item.Target})
	itemLogger := o.logger.With(logging.String(logging.FieldItemID, item.ID))

	if _, err := os.Stat(item.Target); err != nil {
		itemLogger.Warn("skipping missing target", logging.String("target", item.Target))
		return Outcome{Item: item, Status: StatusSkipped, Err: "target no longer exists"}
	}

	if opts.Backup {
		backupPath := filepath.Join(opts.BackupDir, timestampedName(item.Target, time.Now()))
		if err := fileutil.CopyFileVerified(item.Target, backupPath); err != nil {
			itemLogger.Error("backup failed", logging.Error(err))
			return Outcome{Item: item, Status: StatusFailed, Err: fmt.Sprintf("backup failed: %v", err)}
		}
		itemLogger.Debug("backed up target", logging.String("backup", backupPath))
	}

	req := engine.Request{
		Target:     item.Target,
		Reference:  item.Reference,
		Settings:   item.Preset.Settings(),
		Outputs:    engine.BuildOutputs(item.OutputDir, item.Target, item.Preset.OutputFormats),
		UseLimiter: item.Preset.UseLimiter,
		Normalize:  item.Preset.Normalize,
	}
	paths, err := o.engine.Process(ctx, req, func(update engine.ProgressUpdate) {
		o.emit(opts, Event{
			Type:    EventItemProgress,
			ItemID:  item.ID,
			Target:  item.Target,
			Message: update.Message,
			Percent: update.Percent,
		})
	})
	if err != nil {
		itemLogger.Error("mastering failed", logging.String("target", item.Target), logging.Error(err))
		wrapped := services.Wrap(services.ErrProcessing, "batch", "process", item.Target, err)
		return Outcome{Item: item, Status: StatusFailed, Err: services.Message(wrapped)}
	}

	itemLogger.Info("mastered target",
		logging.String("target", item.Target),
		logging.Int("outputs", len(paths)))
	return Outcome{Item: item, Status: StatusSuccess, OutputPaths: paths}
}

func (o *Orchestrator) emit(opts Options, event Event) {
	if opts.Events != nil {
		opts.Events(event)
	}
}

// timestampedName derives the backup filename for a target.
func timestampedName(target string, now time.Time) string {
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "_" + now.Format("20060102_150405") + ext
}
