package classify

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	numberedFractionThreshold = 0.6
	albumMinTracks            = 3
	albumMaxTracks            = 30
)

// numberedStem matches stems that carry a leading track number, a "track N"
// token, or a disc marker. Stems are lowercased before matching.
var numberedStem = regexp.MustCompile(`^\d+[\s\-\._]|track\s*\d+|cd\d`)

// LooksLikeAlbum reports whether a set of audio files reads as one coherent
// release rather than a loose collection. Two signals are combined with OR:
// at least 60% of stems look numbered, or all files sit in a single directory
// and the count falls in [3, 30]. Intentionally permissive, a false positive
// only changes batching behavior.
func LooksLikeAlbum(files []string) bool {
	if len(files) == 0 {
		return false
	}

	numbered := 0
	parents := make(map[string]struct{})
	for _, f := range files {
		stem := strings.ToLower(stemOf(f))
		if numberedStem.MatchString(stem) {
			numbered++
		}
		parents[filepath.Dir(f)] = struct{}{}
	}

	fraction := float64(numbered) / float64(len(files))
	if fraction >= numberedFractionThreshold {
		return true
	}
	return len(parents) == 1 && len(files) >= albumMinTracks && len(files) <= albumMaxTracks
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
