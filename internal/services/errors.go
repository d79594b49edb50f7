package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound marks inputs that resolve to nothing on disk and
	// match nothing in the search roots.
	ErrInputNotFound = errors.New("input not found")
	// ErrUnsupportedInput marks files whose extension is neither audio,
	// archive, nor playlist.
	ErrUnsupportedInput = errors.New("unsupported input type")
	// ErrNoAudioFiles marks directories, archives, and playlists that yield
	// an empty target list.
	ErrNoAudioFiles = errors.New("no audio files found")
	// ErrArchiveExtraction marks zip inputs that could not be unpacked.
	ErrArchiveExtraction = errors.New("archive extraction error")
	// ErrInvalidWeights marks reference weight vectors with a count mismatch
	// or a sum outside 1.0 ± 0.01.
	ErrInvalidWeights = errors.New("invalid reference weights")
	// ErrPresetNotFound marks lookups of preset names the catalog does not carry.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrProcessing wraps a mastering engine failure for a single work item.
	ErrProcessing = errors.New("processing error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProcessing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsClassification reports whether the error belongs to the classifier's
// taxonomy, meaning it should be presented to the user as a reason rather
// than treated as an internal failure.
func IsClassification(err error) bool {
	for _, marker := range []error{
		ErrInputNotFound,
		ErrUnsupportedInput,
		ErrNoAudioFiles,
		ErrArchiveExtraction,
		ErrInvalidWeights,
		ErrPresetNotFound,
	} {
		if errors.Is(err, marker) {
			return true
		}
	}
	return false
}

// Message returns the human-readable portion of a wrapped error, stripping
// the sentinel prefix when present.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []error{
		ErrInputNotFound,
		ErrUnsupportedInput,
		ErrNoAudioFiles,
		ErrArchiveExtraction,
		ErrInvalidWeights,
		ErrPresetNotFound,
		ErrProcessing,
	} {
		prefix := marker.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
