package fileutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions is the set of file extensions treated as audio, lowercase.
var audioExtensions = map[string]struct{}{
	".wav":  {},
	".mp3":  {},
	".flac": {},
	".aiff": {},
	".ogg":  {},
	".m4a":  {},
	".wma":  {},
	".opus": {},
}

// IsAudioFile reports whether the path has a recognized audio extension.
// The check is case-insensitive: some filesystems are case-sensitive and
// uppercase extensions are common on files ripped elsewhere.
func IsAudioFile(path string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ScanAudioDir recursively enumerates audio files under dir, returning a
// de-duplicated, sorted list of absolute paths. Unreadable subtrees are
// skipped rather than failing the scan.
func ScanAudioDir(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsAudioFile(path) {
			return nil
		}
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		seen[abs] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// FindMatches scans roots recursively for audio files whose base name
// contains token (case-insensitive), returning a de-duplicated, sorted list.
// Roots that do not exist are skipped.
func FindMatches(roots []string, token string) []string {
	needle := strings.ToLower(strings.TrimSpace(token))
	if needle == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}
			if d.IsDir() || !IsAudioFile(path) {
				return nil
			}
			if !strings.Contains(strings.ToLower(filepath.Base(path)), needle) {
				return nil
			}
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			seen[abs] = struct{}{}
			return nil
		})
	}

	matches := make([]string, 0, len(seen))
	for path := range seen {
		matches = append(matches, path)
	}
	sort.Strings(matches)
	return matches
}
