package history_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"remaster/internal/batch"
	"remaster/internal/history"
	"remaster/internal/testsupport"
)

func mustOpen(t *testing.T) *history.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecord(i int) history.Record {
	return history.Record{
		Timestamp:     time.Date(2026, 3, 1, 12, 0, i, 0, time.UTC),
		Preset:        "streaming",
		ReferenceFile: "/refs/reference.wav",
		TargetFiles:   []string{fmt.Sprintf("/music/track%03d.wav", i)},
		Results: history.Results{
			Successful: []string{fmt.Sprintf("/music/track%03d.wav", i)},
		},
		OutputDirectory: "/output/streaming",
	}
}

func TestAppendAndRecent(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	rec := sampleRecord(1)
	rec.Results.Failed = []history.FailedEntry{{File: "/music/broken.wav", Error: "unreadable"}}
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	stored := got[0]
	if stored.Preset != "streaming" || stored.ReferenceFile != rec.ReferenceFile {
		t.Fatalf("record fields lost: %+v", stored)
	}
	if len(stored.TargetFiles) != 1 || stored.TargetFiles[0] != rec.TargetFiles[0] {
		t.Fatalf("target files lost: %v", stored.TargetFiles)
	}
	if len(stored.Results.Failed) != 1 || stored.Results.Failed[0].Error != "unreadable" {
		t.Fatalf("failed entries lost: %+v", stored.Results.Failed)
	}
	if !stored.Timestamp.Equal(rec.Timestamp) {
		t.Fatalf("timestamp = %v, want %v", stored.Timestamp, rec.Timestamp)
	}
}

func TestAppendEvictsBeyondCap(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		if err := store.Append(ctx, sampleRecord(i)); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 100 {
		t.Fatalf("count = %d, want 100", count)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 100 {
		t.Fatalf("expected 100 records, got %d", len(records))
	}
	if records[0].TargetFiles[0] != "/music/track050.wav" {
		t.Fatalf("oldest retained record = %v, want track050", records[0].TargetFiles)
	}
	if records[99].TargetFiles[0] != "/music/track149.wav" {
		t.Fatalf("newest record = %v, want track149", records[99].TargetFiles)
	}
	for i := 1; i < len(records); i++ {
		if records[i].ID <= records[i-1].ID {
			t.Fatalf("records out of insertion order at index %d", i)
		}
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Append(ctx, sampleRecord(i)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].TargetFiles[0] != "/music/track004.wav" {
		t.Fatalf("newest first violated: %v", got[0].TargetFiles)
	}
}

func TestNewRecordFromBatchResult(t *testing.T) {
	result := &batch.Result{
		Successful: []batch.Outcome{
			{Item: batch.WorkItem{Target: "/music/a.wav"}, Status: batch.StatusSuccess},
		},
		Failed: []batch.Outcome{
			{Item: batch.WorkItem{Target: "/music/b.wav"}, Status: batch.StatusFailed, Err: "engine exploded"},
		},
	}

	rec := history.NewRecord("audiophile", "/refs/r.wav", []string{"/music/a.wav", "/music/b.wav"}, result, "/out")
	if rec.Preset != "audiophile" {
		t.Fatalf("preset = %q", rec.Preset)
	}
	if len(rec.Results.Successful) != 1 || rec.Results.Successful[0] != "/music/a.wav" {
		t.Fatalf("successful = %v", rec.Results.Successful)
	}
	if len(rec.Results.Failed) != 1 || rec.Results.Failed[0].Error != "engine exploded" {
		t.Fatalf("failed = %+v", rec.Results.Failed)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestSchemaVersionGuard(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := store.Path()
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := history.Open(cfg); !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestWorkspaceLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	lock, err := history.AcquireLock(cfg)
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	if _, err := history.AcquireLock(cfg); err == nil {
		t.Fatal("expected second acquire to fail while lock held")
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	again, err := history.AcquireLock(cfg)
	if err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	_ = again.Release()
}
