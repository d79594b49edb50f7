package engine

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"remaster/internal/preset"
)

func stubCommand(t *testing.T, script string) func() {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
	return func() { commandContext = original }
}

func TestProcessCollectsProgressAndOutputs(t *testing.T) {
	script := `printf '%s\n%s\nnoise line\n' ` +
		`'{"percent":25,"stage":"matching","message":"analyzing"}' ` +
		`'{"percent":100,"stage":"done","message":"complete"}'`
	restore := stubCommand(t, script)
	defer restore()

	cli := NewCLI()
	req := Request{
		Target:    "/in/song.wav",
		Reference: "/ref/ref.wav",
		Settings:  preset.DefaultSettings(),
		Outputs: []OutputSpec{
			{Path: "/out/song_mastered_16bit.wav", Format: preset.FormatWav16},
			{Path: "/out/song_mastered_24bit.wav", Format: preset.FormatWav24},
		},
		UseLimiter: true,
		Normalize:  true,
	}

	var updates []ProgressUpdate
	paths, err := cli.Process(context.Background(), req, func(u ProgressUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 output paths, got %v", paths)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Stage != "matching" || updates[1].Percent != 100 {
		t.Fatalf("unexpected updates: %+v", updates)
	}
}

func TestProcessCommandArguments(t *testing.T) {
	var gotName string
	var gotArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	}
	defer func() { commandContext = original }()

	cli := NewCLI(WithBinary("matchering-custom"))
	req := Request{
		Target:    "/in/song.wav",
		Reference: "/ref/ref.wav",
		Settings:  preset.Settings{Threshold: 0.85, RMSCorrectionSteps: 6, LowessFrac: 0.0375},
		Outputs:   []OutputSpec{{Path: "/out/song_mastered_24bit.wav", Format: preset.FormatWav24}},
	}
	if _, err := cli.Process(context.Background(), req, nil); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if gotName != "matchering-custom" {
		t.Fatalf("binary = %q, want matchering-custom", gotName)
	}
	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{
		"--target /in/song.wav",
		"--reference /ref/ref.wav",
		"--threshold 0.85",
		"--rms-correction-steps 6",
		"--no-limiter",
		"--no-normalize",
		"--result wav_24:/out/song_mastered_24bit.wav",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}

func TestProcessFailure(t *testing.T) {
	restore := stubCommand(t, "exit 3")
	defer restore()

	cli := NewCLI()
	req := Request{
		Target:    "/in/song.wav",
		Reference: "/ref/ref.wav",
		Outputs:   []OutputSpec{{Path: "/out/x.wav", Format: preset.FormatWav16}},
	}
	if _, err := cli.Process(context.Background(), req, nil); err == nil {
		t.Fatal("expected error for nonzero exit")
	}
}

func TestProcessValidatesRequest(t *testing.T) {
	cli := NewCLI()
	cases := []Request{
		{Reference: "/ref/ref.wav", Outputs: []OutputSpec{{Path: "/out/x.wav"}}},
		{Target: "/in/song.wav", Outputs: []OutputSpec{{Path: "/out/x.wav"}}},
		{Target: "/in/song.wav", Reference: "/ref/ref.wav"},
	}
	for i, req := range cases {
		if _, err := cli.Process(context.Background(), req, nil); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestBuildOutputs(t *testing.T) {
	specs := BuildOutputs("/out", "/in/My Song.wav", []preset.OutputFormat{
		preset.FormatWav16, preset.FormatFlac24, preset.FormatMp3,
	})
	want := []string{
		"/out/My Song_mastered_16bit.wav",
		"/out/My Song_mastered_24bit.flac",
		"/out/My Song_mastered_320.mp3",
	}
	if len(specs) != len(want) {
		t.Fatalf("expected %d specs, got %d", len(want), len(specs))
	}
	for i, spec := range specs {
		if spec.Path != want[i] {
			t.Errorf("spec %d path = %q, want %q", i, spec.Path, want[i])
		}
	}
}
