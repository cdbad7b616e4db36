package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/olivier-w/driftfield/internal/config"
	"github.com/olivier-w/driftfield/internal/particles"
	"github.com/olivier-w/driftfield/internal/svgcanvas"
	"github.com/olivier-w/driftfield/internal/util"
	"github.com/spf13/cobra"
)

var errBudgetSpent = errors.New("frame budget spent")

// frameBudget lets a fixed number of frames through, pacing them with next
// when it is set.
type frameBudget struct {
	next particles.Scheduler
	left int
}

func (b *frameBudget) Wait(ctx context.Context) error {
	b.left--
	if b.left <= 0 {
		return errBudgetSpent
	}
	if b.next == nil {
		return ctx.Err()
	}
	return b.next.Wait(ctx)
}

type benchResult struct {
	stats   particles.Stats
	elapsed time.Duration
}

func (r benchResult) perFrame() time.Duration {
	if r.stats.Frames == 0 {
		return 0
	}
	return r.elapsed / time.Duration(r.stats.Frames)
}

// runBench draws frames onto an off-screen SVG surface until the budget is
// spent or ctx is cancelled.
func runBench(ctx context.Context, cfg config.Config, width, height, frames, fps int) (benchResult, error) {
	field, err := particles.New(svgcanvas.New(), config.NewRand(cfg.Particles.Seed), cfg.Particles.FieldOptions())
	if err != nil {
		return benchResult{}, err
	}
	field.Reset(width, height)

	sched := &frameBudget{left: frames}
	if fps > 0 {
		t := particles.NewTicker(fps)
		defer t.Stop()
		sched.next = t
	}

	start := time.Now()
	err = field.Run(ctx, sched)
	res := benchResult{stats: field.Stats(), elapsed: time.Since(start)}
	if errors.Is(err, errBudgetSpent) || errors.Is(err, context.Canceled) {
		err = nil
	}
	return res, err
}

func newBenchCmd(configPath *string) *cobra.Command {
	var (
		frames, fps   int
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the field headless and report frame times",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1, got %d", frames)
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := runBench(ctx, cfg, width, height, frames, fps)
			if err != nil {
				return err
			}
			log.Printf("%d frames, %d particles, %d resets, %d links in last frame, %s per frame",
				res.stats.Frames, cfg.Particles.Count, res.stats.Resets, res.stats.Links,
				util.FormatFrameTime(res.perFrame()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 1000, "number of frames to draw")
	cmd.Flags().IntVar(&fps, "fps", 0, "frame rate cap, 0 for unthrottled")
	cmd.Flags().IntVar(&width, "width", 1920, "viewport width")
	cmd.Flags().IntVar(&height, "height", 1080, "viewport height")
	return cmd
}
