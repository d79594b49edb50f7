// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"remaster/internal/config"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.WorkspaceDir = root
	cfg.Paths.OutputDir = filepath.Join(root, "output")
	cfg.Paths.BackupDir = filepath.Join(root, "backups")
	cfg.Paths.LogDir = filepath.Join(root, "logs")
	cfg.Paths.TempDir = filepath.Join(root, "temp")
	cfg.Search.Roots = []string{filepath.Join(root, "search")}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("failed to create config directories: %v", err)
	}
	for _, dir := range cfg.Search.Roots {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create search root: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WriteFile creates a file with the given content, making parent directories
// as needed, and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
