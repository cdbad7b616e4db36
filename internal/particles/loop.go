package particles

import (
	"context"
	"time"
)

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Ticker schedules frames at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a scheduler firing fps times per second. fps <= 0 means 60.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the underlying timer.
func (t *Ticker) Stop() { t.t.Stop() }

// Run draws frames until ctx is done or the scheduler fails. Frames never
// overlap: each one finishes before the scheduler is consulted again.
func (f *Field) Run(ctx context.Context, s Scheduler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.Frame()
		if err := s.Wait(ctx); err != nil {
			return err
		}
	}
}
