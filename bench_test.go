package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/olivier-w/driftfield/internal/config"
)

func TestFrameBudgetStopsAfterLimit(t *testing.T) {
	b := &frameBudget{left: 3}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := b.Wait(ctx); err != nil {
			t.Fatalf("wait %d: unexpected error: %v", i, err)
		}
	}
	if err := b.Wait(ctx); !errors.Is(err, errBudgetSpent) {
		t.Fatalf("expected errBudgetSpent, got %v", err)
	}
}

func TestRunBenchDrawsRequestedFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.Seed = 7

	res, err := runBench(context.Background(), cfg, 800, 600, 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.stats.Frames != 50 {
		t.Fatalf("expected 50 frames, got %d", res.stats.Frames)
	}
}

func TestRunBenchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runBench(ctx, config.Default(), 800, 600, 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.stats.Frames != 0 {
		t.Fatalf("expected no frames, got %d", res.stats.Frames)
	}
}

func TestPerFrame(t *testing.T) {
	r := benchResult{elapsed: time.Second}
	if r.perFrame() != 0 {
		t.Fatalf("expected 0 with no frames, got %v", r.perFrame())
	}
	r.stats.Frames = 4
	if r.perFrame() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", r.perFrame())
	}
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"window", "serve", "bench"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v (%v)", name, cmd, err)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatal("expected --config flag")
	}
}
