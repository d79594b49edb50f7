package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"remaster/internal/batch"
	"remaster/internal/blend"
	"remaster/internal/classify"
	"remaster/internal/config"
	"remaster/internal/engine"
	"remaster/internal/history"
	"remaster/internal/logging"
	"remaster/internal/preset"
	"remaster/internal/services"
)

type masterFlags struct {
	references []string
	weights    string
	presetName string
	variations int
	workers    int
	backup     bool
	noBackup   bool
	outputDir  string
}

func newMasterCommand(ctx *commandContext) *cobra.Command {
	flags := &masterFlags{}

	cmd := &cobra.Command{
		Use:   "master <input>",
		Short: "Classify an input and master it against one or more references",
		Long: `Master accepts a single audio file, a directory, a zip archive, a playlist
file, or a search term, works out what kind of job it is, and runs every
resolved target against the reference tracks with bounded concurrency.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaster(cmd, ctx, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.references, "reference", "r", nil, "Reference track (repeatable)")
	cmd.Flags().StringVar(&flags.weights, "weights", "", "Comma-separated reference blend weights")
	cmd.Flags().StringVarP(&flags.presetName, "preset", "p", "", "Preset name (defaults to the detected genre)")
	cmd.Flags().IntVar(&flags.variations, "variations", 1, "Number of blend variations per target")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Worker pool size (defaults to batch.max_workers)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "Back up targets before processing")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "Skip target backups")

	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory (defaults to paths.output_dir)")

	return cmd
}

func runMaster(cmd *cobra.Command, ctx *commandContext, input string, flags *masterFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	runCtx := services.WithRunID(context.Background(), uuid.NewString())
	logger = logging.WithContext(runCtx, logger)
	out := cmd.OutOrStdout()

	classifier := classify.New(cfg, logger)
	job, err := classifier.Classify(input)
	if err != nil {
		return err
	}
	if job.ExtractedDir != "" {
		defer os.RemoveAll(job.ExtractedDir)
	}
	if job.Kind == classify.KindURL {
		fmt.Fprintf(out, "URL inputs are not supported yet: %s\n", job.Input)
		return nil
	}
	fmt.Fprintf(out, "Classified input as %s job with %d target(s)\n", job.Kind, len(job.Targets))

	refs, err := resolveReferences(flags)
	if err != nil {
		return err
	}

	activePreset, err := resolvePreset(ctx, job, flags.presetName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Using preset %s (%s)\n", activePreset.Key, activePreset.Name)

	variations, err := resolveVariations(refs, flags.variations)
	if err != nil {
		return err
	}

	outputBase := flags.outputDir
	if outputBase == "" {
		outputBase = cfg.Paths.OutputDir
	}
	runDir := filepath.Join(outputBase, activePreset.Key, time.Now().Format("20060102_150405"))

	items := buildWorkItems(job.Targets, refs, variations, activePreset, runDir)

	lock, err := history.AcquireLock(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	eng := engine.NewCLI(
		engine.WithBinary(cfg.Engine.Binary),
		engine.WithTimeout(time.Duration(cfg.Engine.TimeoutSeconds)*time.Second),
	)
	orchestrator := batch.New(eng, logger)

	reporter := newProgressReporter(out, len(items))
	result, err := orchestrator.Run(runCtx, items, batch.Options{
		Workers:   resolveWorkers(cfg, flags),
		Backup:    resolveBackup(cfg, flags),
		BackupDir: cfg.Paths.BackupDir,
		Events:    reporter.handle,
	})
	if err != nil {
		return err
	}
	reporter.finish()

	record := history.NewRecord(activePreset.Key, strings.Join(refs.Paths, ", "),
		job.Targets, result, runDir)
	if err := store.Append(runCtx, record); err != nil {
		return fmt.Errorf("record run history: %w", err)
	}

	renderReport(out, result, runDir)
	return nil
}

func resolveReferences(flags *masterFlags) (blend.ReferenceSet, error) {
	if len(flags.references) == 0 {
		return blend.ReferenceSet{}, fmt.Errorf("at least one --reference track is required")
	}
	for _, ref := range flags.references {
		if info, err := os.Stat(ref); err != nil || !info.Mode().IsRegular() {
			return blend.ReferenceSet{}, services.Wrap(services.ErrInputNotFound, "master", "reference", ref, err)
		}
	}

	set := blend.ReferenceSet{Paths: flags.references}
	if flags.weights != "" {
		for _, field := range strings.Split(flags.weights, ",") {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return blend.ReferenceSet{}, fmt.Errorf("parse --weights: %w", err)
			}
			set.Weights = append(set.Weights, value)
		}
	}
	if err := set.Validate(); err != nil {
		return blend.ReferenceSet{}, err
	}
	return set, nil
}

// resolveVariations expands the reference set into blend variations. A single
// variation honors explicitly supplied weights; multiple variations are always
// generated from the reference count.
func resolveVariations(refs blend.ReferenceSet, count int) ([]blend.Variation, error) {
	variations, err := blend.Generate(len(refs.Paths), count)
	if err != nil {
		return nil, err
	}
	if count == 1 && len(refs.Weights) > 0 {
		variations[0] = blend.NewVariation(refs.Resolved())
	}
	return variations, nil
}

func resolvePreset(ctx *commandContext, job *classify.Job, name string) (preset.Preset, error) {
	if name != "" {
		return ctx.catalog.Get(name)
	}
	genre := job.Genre
	if genre == "" {
		genre = classify.DetectAlbumGenre(job.Targets)
	}
	return ctx.catalog.ForGenre(genre), nil
}

func resolveWorkers(cfg *config.Config, flags *masterFlags) int {
	if flags.workers > 0 {
		return flags.workers
	}
	return cfg.Batch.MaxWorkers
}

func resolveBackup(cfg *config.Config, flags *masterFlags) bool {
	if flags.noBackup {
		return false
	}
	if flags.backup {
		return true
	}
	return cfg.Batch.CreateBackups
}

// buildWorkItems crosses every target with every blend variation. Each
// variation is mastered against its dominant reference; the full weight
// vector rides along for reporting.
func buildWorkItems(targets []string, refs blend.ReferenceSet, variations []blend.Variation, p preset.Preset, runDir string) []batch.WorkItem {
	items := make([]batch.WorkItem, 0, len(targets)*len(variations))
	for _, target := range targets {
		for i, variation := range variations {
			outputDir := runDir
			if len(variations) > 1 {
				outputDir = filepath.Join(runDir, fmt.Sprintf("variation_%d", i+1))
			}
			item := batch.NewWorkItem(target, refs.Paths[variation.Dominant], p, outputDir)
			if len(refs.Paths) > 1 {
				item.Weights = variation.Weights
			}
			items = append(items, item)
		}
	}
	return items
}

func renderReport(out io.Writer, result *batch.Result, runDir string) {
	fmt.Fprintf(out, "\nMastered %d of %d item(s); output in %s\n",
		len(result.Successful), result.Total(), runDir)

	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d item(s) whose targets disappeared\n", len(result.Skipped))
	}
	if len(result.Failed) == 0 {
		return
	}

	rows := make([][]string, 0, len(result.Failed))
	for _, outcome := range result.Failed {
		rows = append(rows, []string{filepath.Base(outcome.Item.Target), outcome.Err})
	}
	fmt.Fprintln(out, "\nFailures:")
	fmt.Fprintln(out, renderTable([]string{"Target", "Error"}, rows, []columnAlignment{alignLeft, alignLeft}))
}
