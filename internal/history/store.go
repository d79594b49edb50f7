package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"remaster/internal/config"
)

// Store persists run history backed by SQLite. After any append the store
// holds at most maxRecords rows, oldest evicted first.
type Store struct {
	db         *sql.DB
	path       string
	maxRecords int
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.WorkspaceDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, maxRecords: cfg.History.MaxRecords}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Append inserts one record and evicts anything beyond the cap.
func (s *Store) Append(ctx context.Context, rec Record) error {
	targetsJSON, err := json.Marshal(rec.TargetFiles)
	if err != nil {
		return fmt.Errorf("marshal target files: %w", err)
	}
	successfulJSON, err := json.Marshal(rec.Results.Successful)
	if err != nil {
		return fmt.Errorf("marshal successful: %w", err)
	}
	failedJSON, err := json.Marshal(rec.Results.Failed)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	created := rec.Timestamp
	if created.IsZero() {
		created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO history_records (
            created_at, preset, reference_file, target_files_json,
            successful_json, failed_json, output_directory
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.Format(time.RFC3339Nano),
		rec.Preset,
		rec.ReferenceFile,
		string(targetsJSON),
		string(successfulJSON),
		string(failedJSON),
		rec.OutputDirectory,
	); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM history_records WHERE id NOT IN (
            SELECT id FROM history_records ORDER BY id DESC LIMIT ?
        )`,
		s.maxRecords,
	); err != nil {
		return fmt.Errorf("evict old records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, preset, reference_file, target_files_json,
                successful_json, failed_json, output_directory
         FROM history_records ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// List returns every retained record in insertion order, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, preset, reference_file, target_files_json,
                successful_json, failed_json, output_directory
         FROM history_records ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Count returns the number of retained records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM history_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var (
			rec            Record
			createdAt      string
			targetsJSON    string
			successfulJSON string
			failedJSON     string
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Preset, &rec.ReferenceFile,
			&targetsJSON, &successfulJSON, &failedJSON, &rec.OutputDirectory); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse record timestamp: %w", err)
		}
		rec.Timestamp = ts
		if err := json.Unmarshal([]byte(targetsJSON), &rec.TargetFiles); err != nil {
			return nil, fmt.Errorf("decode target files: %w", err)
		}
		if err := json.Unmarshal([]byte(successfulJSON), &rec.Results.Successful); err != nil {
			return nil, fmt.Errorf("decode successful: %w", err)
		}
		if err := json.Unmarshal([]byte(failedJSON), &rec.Results.Failed); err != nil {
			return nil, fmt.Errorf("decode failed: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
