package visualizer

import "time"

// FrameClock keeps the timestamps of the most recent frames in a ring and
// reports the measured frame rate over them.
type FrameClock struct {
	buf  []time.Time
	size int
	w    int // write position
	len  int // current fill level
}

// NewFrameClock creates a clock remembering the last size frames.
func NewFrameClock(size int) *FrameClock {
	if size < 2 {
		size = 2
	}
	return &FrameClock{
		buf:  make([]time.Time, size),
		size: size,
	}
}

// Mark records a frame drawn at t, overwriting the oldest one if full.
func (c *FrameClock) Mark(t time.Time) {
	c.buf[c.w] = t
	c.w = (c.w + 1) % c.size
	if c.len < c.size {
		c.len++
	}
}

// Rate returns frames per second across the remembered window, or 0 with
// fewer than two frames.
func (c *FrameClock) Rate() float64 {
	if c.len < 2 {
		return 0
	}
	newest := c.buf[(c.w-1+c.size)%c.size]
	oldest := c.buf[(c.w-c.len+c.size)%c.size]
	span := newest.Sub(oldest)
	if span <= 0 {
		return 0
	}
	return float64(c.len-1) / span.Seconds()
}

// Clear forgets every frame.
func (c *FrameClock) Clear() {
	c.w = 0
	c.len = 0
}
