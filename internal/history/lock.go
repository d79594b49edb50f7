package history

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"remaster/internal/config"
)

// Lock enforces the single-writer assumption for the history store. Only one
// orchestrating process may append at a time.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the workspace lock, failing immediately when another
// process holds it.
func AcquireLock(cfg *config.Config) (*Lock, error) {
	fl := flock.New(filepath.Join(cfg.Paths.WorkspaceDir, "remaster.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("workspace locked by another remaster process (%s)", fl.Path())
	}
	return &Lock{fl: fl}, nil
}

// Release drops the workspace lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
