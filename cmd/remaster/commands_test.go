package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"remaster/internal/blend"
	"remaster/internal/config"
	"remaster/internal/preset"
)

func TestPresetsCommandListsCatalog(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, key := range []string{"pop_radio", "streaming", "trap", "jazz_fusion", "dubstep"} {
		if !strings.Contains(out, key) {
			t.Errorf("presets output missing %q", key)
		}
	}
}

func TestPresetsShowCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "presets", "show", "trap")
	if err != nil {
		t.Fatalf("presets show failed: %v", err)
	}
	if !strings.Contains(out, "Trap/808 Heavy") {
		t.Fatalf("missing preset name: %s", out)
	}
	if !strings.Contains(out, "Sub Bass") {
		t.Fatalf("missing characteristic label: %s", out)
	}

	if _, err := runCommand(t, "--config", configPath, "presets", "show", "nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestHistoryCommandEmptyStore(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "No mastering runs recorded yet.") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "conf", "remaster.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("missing target path in output: %s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
}

func TestConfigShowCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, setting := range []string{"paths.workspace_dir", "engine.binary", "history.max_records"} {
		if !strings.Contains(out, setting) {
			t.Errorf("config show missing %q", setting)
		}
	}
}

func TestBuildWorkItems(t *testing.T) {
	p, err := preset.NewCatalog().Get("streaming")
	if err != nil {
		t.Fatal(err)
	}
	refs := blend.ReferenceSet{Paths: []string{"/refs/a.wav", "/refs/b.wav"}}
	variations, err := blend.Generate(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	items := buildWorkItems([]string{"/music/x.wav", "/music/y.wav"}, refs, variations, p, "/out/run")
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.ID == "" {
			t.Fatal("work item missing id")
		}
		if _, dup := seen[item.ID]; dup {
			t.Fatal("duplicate work item id")
		}
		seen[item.ID] = struct{}{}
		if !strings.HasPrefix(item.OutputDir, "/out/run/variation_") {
			t.Fatalf("unexpected output dir: %s", item.OutputDir)
		}
		if len(item.Weights) != 2 {
			t.Fatalf("expected blend weights on multi-reference item: %v", item.Weights)
		}
	}
}

func TestBuildWorkItemsSingleVariationUsesRunDir(t *testing.T) {
	p, err := preset.NewCatalog().Get("streaming")
	if err != nil {
		t.Fatal(err)
	}
	refs := blend.ReferenceSet{Paths: []string{"/refs/a.wav"}}
	variations, err := blend.Generate(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	items := buildWorkItems([]string{"/music/x.wav"}, refs, variations, p, "/out/run")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].OutputDir != "/out/run" {
		t.Fatalf("output dir = %s, want /out/run", items[0].OutputDir)
	}
	if items[0].Reference != "/refs/a.wav" {
		t.Fatalf("reference = %s", items[0].Reference)
	}
	if items[0].Weights != nil {
		t.Fatalf("single-reference item should not carry weights: %v", items[0].Weights)
	}
}

func TestResolveVariationsHonorsExplicitWeights(t *testing.T) {
	refs := blend.ReferenceSet{
		Paths:   []string{"/refs/a.wav", "/refs/b.wav"},
		Weights: []float64{0.1, 0.9},
	}

	variations, err := resolveVariations(refs, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(variations) != 1 {
		t.Fatalf("expected 1 variation, got %d", len(variations))
	}
	if variations[0].Dominant != 1 {
		t.Fatalf("dominant = %d, want the heavier reference", variations[0].Dominant)
	}
	if variations[0].Weights[0] != 0.1 || variations[0].Weights[1] != 0.9 {
		t.Fatalf("explicit weights not carried: %v", variations[0].Weights)
	}

	p, err := preset.NewCatalog().Get("streaming")
	if err != nil {
		t.Fatal(err)
	}
	items := buildWorkItems([]string{"/music/x.wav"}, refs, variations, p, "/out/run")
	if items[0].Reference != "/refs/b.wav" {
		t.Fatalf("item should master against the heavier reference, got %s", items[0].Reference)
	}
	if len(items[0].Weights) != 2 || items[0].Weights[1] != 0.9 {
		t.Fatalf("item weights = %v", items[0].Weights)
	}
}

func TestResolveVariationsGeneratesWhenMultiple(t *testing.T) {
	refs := blend.ReferenceSet{
		Paths:   []string{"/refs/a.wav", "/refs/b.wav"},
		Weights: []float64{0.1, 0.9},
	}

	variations, err := resolveVariations(refs, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(variations) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(variations))
	}
	if variations[0].Dominant == variations[1].Dominant {
		t.Fatalf("variations should emphasize distinct references, both got %d", variations[0].Dominant)
	}
}

func TestResolveWorkersAndBackup(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.MaxWorkers = 4
	cfg.Batch.CreateBackups = true

	if got := resolveWorkers(&cfg, &masterFlags{}); got != 4 {
		t.Fatalf("resolveWorkers default = %d, want 4", got)
	}
	if got := resolveWorkers(&cfg, &masterFlags{workers: 8}); got != 8 {
		t.Fatalf("resolveWorkers flag = %d, want 8", got)
	}
	if !resolveBackup(&cfg, &masterFlags{}) {
		t.Fatal("expected config default backup true")
	}
	if resolveBackup(&cfg, &masterFlags{noBackup: true}) {
		t.Fatal("expected --no-backup to win")
	}
	cfg.Batch.CreateBackups = false
	if !resolveBackup(&cfg, &masterFlags{backup: true}) {
		t.Fatal("expected --backup to win over config")
	}
}
