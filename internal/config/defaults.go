package config

import (
	"os"
	"path/filepath"
)

const (
	defaultWorkspaceDir      = "~/.local/share/remaster"
	defaultLogDirSuffix      = "logs"
	defaultOutputDirSuffix   = "output"
	defaultBackupDirSuffix   = "backups"
	defaultTempDirSuffix     = "temp"
	defaultEngineBinary      = "matchering"
	defaultEngineTimeout     = 1800
	defaultMaxWorkers        = 2
	defaultCreateBackups     = true
	defaultHistoryMaxRecords = 100
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkspaceDir: defaultWorkspaceDir,
		},
		Search: Search{
			Roots: defaultSearchRoots(),
		},
		Engine: Engine{
			Binary:         defaultEngineBinary,
			TimeoutSeconds: defaultEngineTimeout,
		},
		Batch: Batch{
			MaxWorkers:    defaultMaxWorkers,
			CreateBackups: defaultCreateBackups,
		},
		History: History{
			MaxRecords: defaultHistoryMaxRecords,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// defaultSearchRoots returns the well-known directories scanned when an input
// is treated as a search term: music folder, downloads, desktop, and the
// current working directory, in that order.
func defaultSearchRoots() []string {
	roots := make([]string, 0, 4)
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, "Music"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, cwd)
	}
	return roots
}
