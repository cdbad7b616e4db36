package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Particles.Count != 80 || cfg.Particles.LinkDistance != 120 || cfg.Particles.MaxLinkOpacity != 0.12 {
		t.Fatalf("unexpected particle defaults %+v", cfg.Particles)
	}
	if cfg.Terminal.FPS != 30 {
		t.Fatalf("expected 30 fps, got %d", cfg.Terminal.FPS)
	}
	if len(cfg.Content.Phrases) != 4 {
		t.Fatalf("expected 4 default phrases, got %d", len(cfg.Content.Phrases))
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "driftfield.yaml", `
particles:
  count: 150
  seed: 42
terminal:
  fps: 45
content:
  phrases: ["One.", "Two."]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Particles.Count != 150 || cfg.Particles.Seed != 42 {
		t.Fatalf("expected count 150 seed 42, got %+v", cfg.Particles)
	}
	if cfg.Particles.LinkDistance != 120 {
		t.Fatalf("expected untouched link distance, got %g", cfg.Particles.LinkDistance)
	}
	if cfg.Terminal.FPS != 45 {
		t.Fatalf("expected 45 fps, got %d", cfg.Terminal.FPS)
	}
	if strings.Join(cfg.Content.Phrases, "|") != "One.|Two." {
		t.Fatalf("unexpected phrases %v", cfg.Content.Phrases)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "empty.yaml", "")

	if _, err := Load(path); err != nil {
		t.Fatalf("expected empty file to load, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "bad.yaml", "particles:\n  colour: red\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRIFTFIELD_COUNT", "12")
	t.Setenv("DRIFTFIELD_FPS", "20")
	t.Setenv("DRIFTFIELD_LINK_DISTANCE", "90.5")
	t.Setenv("DRIFTFIELD_SEED", "7")
	t.Setenv("DRIFTFIELD_ADDR", "127.0.0.1:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Particles.Count != 12 || cfg.Terminal.FPS != 20 || cfg.Particles.LinkDistance != 90.5 || cfg.Particles.Seed != 7 {
		t.Fatalf("env overrides not applied: %+v %+v", cfg.Particles, cfg.Terminal)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected addr override, got %q", cfg.Server.Addr)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRIFTFIELD_COUNT", "lots")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "DRIFTFIELD_COUNT") {
		t.Fatalf("expected DRIFTFIELD_COUNT error, got %v", err)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "DRIFTFIELD_LOG=driftfield.log\n")
	t.Cleanup(func() { os.Unsetenv("DRIFTFIELD_LOG") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Terminal.LogFile != "driftfield.log" {
		t.Fatalf("expected log file from .env, got %q", cfg.Terminal.LogFile)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Particles.Count = -1
	cfg.Terminal.FPS = 0
	cfg.Content.Panels[0].Skills[0].Level = 140

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"particles.count", "terminal.fps", "level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestFieldOptionsAndRand(t *testing.T) {
	p := Default().Particles
	p.Count = 33
	p.Blur = 2
	opts := p.FieldOptions()
	if opts.Count != 33 || opts.Blur != 2 || opts.LinkDistance != 120 || opts.LinkWidth != 0.5 {
		t.Fatalf("unexpected options %+v", opts)
	}

	if NewRand(0) != nil {
		t.Fatal("expected nil source for seed 0")
	}
	a, b := NewRand(5), NewRand(5)
	if a.Float64() != b.Float64() {
		t.Fatal("expected equal seeds to give equal draws")
	}
}
