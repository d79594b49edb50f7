package config

import (
	"path/filepath"
	"strings"
)

// normalize expands user paths, derives dependent directories from the
// workspace root, and trims string fields.
func (c *Config) normalize() error {
	workspace, err := expandPath(c.Paths.WorkspaceDir)
	if err != nil {
		return err
	}
	c.Paths.WorkspaceDir = workspace

	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = filepath.Join(workspace, defaultOutputDirSuffix)
	}
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = filepath.Join(workspace, defaultBackupDirSuffix)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(workspace, defaultLogDirSuffix)
	}
	if strings.TrimSpace(c.Paths.TempDir) == "" {
		c.Paths.TempDir = filepath.Join(workspace, defaultTempDirSuffix)
	}

	for _, field := range []*string{
		&c.Paths.OutputDir,
		&c.Paths.BackupDir,
		&c.Paths.LogDir,
		&c.Paths.TempDir,
	} {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	roots := make([]string, 0, len(c.Search.Roots))
	for _, root := range c.Search.Roots {
		trimmed := strings.TrimSpace(root)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		roots = append(roots, expanded)
	}
	if len(roots) == 0 {
		roots = defaultSearchRoots()
	}
	c.Search.Roots = roots

	c.Engine.Binary = strings.TrimSpace(c.Engine.Binary)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
