package hero

import (
	"math"
	"time"
)

// CountDuration is how long a counter takes to reach its target.
const CountDuration = 1800 * time.Millisecond

// EaseOutQuart is 1-(1-t)^4 with t clamped to [0, 1].
func EaseOutQuart(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 4)
}

// Counter counts from zero up to Target, fast at first and slowing down.
type Counter struct {
	Label  string
	Target int
	start  time.Time
}

// NewCounter starts counting at start.
func NewCounter(label string, target int, start time.Time) Counter {
	return Counter{Label: label, Target: target, start: start}
}

func (c Counter) progress(now time.Time) float64 {
	return float64(now.Sub(c.start)) / float64(CountDuration)
}

// Value is the number shown at now: exactly Target once the count is done.
func (c Counter) Value(now time.Time) int {
	p := c.progress(now)
	if p >= 1 {
		return c.Target
	}
	return int(math.Floor(EaseOutQuart(p) * float64(c.Target)))
}

// Done reports whether the counter has reached its target.
func (c Counter) Done(now time.Time) bool {
	return c.progress(now) >= 1
}
