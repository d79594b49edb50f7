package logging_test

import (
	"context"
	"strings"
	"testing"

	"remaster/internal/logging"
	"remaster/internal/services"
)

func TestConsoleHandlerFormatsLine(t *testing.T) {
	var buf strings.Builder
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logging.WithComponent(logger, "classify").Info("job classified",
		logging.String("kind", "album"),
		logging.Int("targets", 12),
	)

	line := buf.String()
	for _, fragment := range []string{"INFO", "classify: job classified", "kind=album", "targets=12"} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
}

func TestWithContextStampsIdentifiers(t *testing.T) {
	var buf strings.Builder
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithItemID(ctx, "item-7")
	logging.WithContext(ctx, logger).Info("item done")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") || !strings.Contains(line, "item_id=item-7") {
		t.Fatalf("expected identifiers in %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}
