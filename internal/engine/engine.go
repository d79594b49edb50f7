package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"remaster/internal/preset"
)

var commandContext = exec.CommandContext

// ProgressUpdate captures engine progress events.
type ProgressUpdate struct {
	Percent float64
	Stage   string
	Message string
}

// OutputSpec names one rendition the engine should write.
type OutputSpec struct {
	Path   string
	Format preset.OutputFormat
}

// Request describes one mastering invocation: a target matched against a
// single reference, rendered to one or more output formats.
type Request struct {
	Target     string
	Reference  string
	Settings   preset.Settings
	Outputs    []OutputSpec
	UseLimiter bool
	Normalize  bool
}

// Engine defines mastering behaviour.
type Engine interface {
	Process(ctx context.Context, req Request, progress func(ProgressUpdate)) ([]string, error)
}

// Option configures the CLI engine.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithTimeout bounds a single engine invocation. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *CLI) {
		c.timeout = d
	}
}

// CLI wraps the matchering command-line engine.
type CLI struct {
	binary  string
	timeout time.Duration
}

// NewCLI constructs a CLI engine using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "matchering"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Process launches the engine for one request and returns the paths of the
// renditions it was asked to write. Progress lines on stdout are expected as
// JSON objects; non-JSON lines are ignored.
func (c *CLI) Process(ctx context.Context, req Request, progress func(ProgressUpdate)) ([]string, error) {
	if req.Target == "" {
		return nil, errors.New("target path required")
	}
	if req.Reference == "" {
		return nil, errors.New("reference path required")
	}
	if len(req.Outputs) == 0 {
		return nil, errors.New("at least one output required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"process",
		"--target", req.Target,
		"--reference", req.Reference,
		"--threshold", strconv.FormatFloat(req.Settings.Threshold, 'f', -1, 64),
		"--rms-correction-steps", strconv.Itoa(req.Settings.RMSCorrectionSteps),
		"--lowess-frac", strconv.FormatFloat(req.Settings.LowessFrac, 'f', -1, 64),
		"--progress-json",
	}
	if !req.UseLimiter {
		args = append(args, "--no-limiter")
	}
	if !req.Normalize {
		args = append(args, "--no-normalize")
	}
	paths := make([]string, 0, len(req.Outputs))
	for _, out := range req.Outputs {
		args = append(args, "--result", string(out.Format)+":"+out.Path)
		paths = append(paths, out.Path)
	}

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", c.binary, err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Bytes()
		var payload struct {
			Percent float64 `json:"percent"`
			Stage   string  `json:"stage"`
			Message string  `json:"message"`
		}
		if err := json.Unmarshal(line, &payload); err != nil {
			continue
		}
		if progress != nil {
			progress(ProgressUpdate{Percent: payload.Percent, Stage: payload.Stage, Message: payload.Message})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s output: %w", c.binary, err)
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s timed out: %w", c.binary, ctx.Err())
		}
		return nil, fmt.Errorf("%s process failed: %w", c.binary, err)
	}

	return paths, nil
}

// BuildOutputs derives output specs for the target under outputDir, one per
// format, using the format's filename suffix.
func BuildOutputs(outputDir, target string, formats []preset.OutputFormat) []OutputSpec {
	base := filepath.Base(target)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	specs := make([]OutputSpec, 0, len(formats))
	for _, format := range formats {
		name := stem + format.Suffix() + "." + format.Ext()
		specs = append(specs, OutputSpec{Path: filepath.Join(outputDir, name), Format: format})
	}
	return specs
}

var _ Engine = (*CLI)(nil)
