package services_test

import (
	"errors"
	"strings"
	"testing"

	"remaster/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrProcessing, "engine", "process", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrProcessing) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"engine", "process", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestIsClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"input not found", services.Wrap(services.ErrInputNotFound, "classify", "stat", "missing", nil), true},
		{"unsupported", services.Wrap(services.ErrUnsupportedInput, "classify", "", ".docx", nil), true},
		{"processing", services.Wrap(services.ErrProcessing, "engine", "", "clipped", nil), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.IsClassification(tc.err); got != tc.want {
				t.Fatalf("IsClassification(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestMessageStripsMarker(t *testing.T) {
	err := services.Wrap(services.ErrNoAudioFiles, "classify", "scan", "directory is empty", nil)
	msg := services.Message(err)
	if strings.Contains(msg, "no audio files found:") {
		t.Fatalf("expected marker prefix stripped, got %q", msg)
	}
	if !strings.Contains(msg, "directory is empty") {
		t.Fatalf("expected detail retained, got %q", msg)
	}
	if services.Message(nil) != "" {
		t.Fatal("expected empty message for nil error")
	}
}
