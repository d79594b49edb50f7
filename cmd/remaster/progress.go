package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"remaster/internal/batch"
)

// progressReporter renders the orchestrator's event stream. On a terminal it
// drives a progress bar; otherwise it prints one line per completed item.
type progressReporter struct {
	out   io.Writer
	total int
	bar   *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer, total int) *progressReporter {
	r := &progressReporter{out: out, total: total}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) && total > 0 {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Mastering"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return r
}

func (r *progressReporter) handle(event batch.Event) {
	switch event.Type {
	case batch.EventItemFinished:
		if r.bar != nil {
			r.bar.Describe(fmt.Sprintf("Mastering %s", filepath.Base(event.Target)))
			_ = r.bar.Add(1)
			return
		}
		line := fmt.Sprintf("[%d/%d] %s %s", event.Completed, event.Total,
			event.Status, filepath.Base(event.Target))
		if event.Message != "" {
			line += ": " + event.Message
		}
		fmt.Fprintln(r.out, line)
	case batch.EventItemProgress:
		if r.bar != nil && event.Message != "" {
			r.bar.Describe(fmt.Sprintf("Mastering %s (%s)", filepath.Base(event.Target), event.Message))
		}
	}
}

func (r *progressReporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}
