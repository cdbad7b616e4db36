package hero

import "time"

// Reveal stagger.
const (
	RevealDelay = 100 * time.Millisecond
	RevealStep  = 80 * time.Millisecond
)

// Reveal shows items one after another from a start time.
type Reveal struct {
	start time.Time
}

func NewReveal(start time.Time) Reveal { return Reveal{start: start} }

// At is when item i becomes visible.
func (r Reveal) At(i int) time.Time {
	return r.start.Add(RevealDelay + time.Duration(i)*RevealStep)
}

// Visible reports whether item i is shown at now.
func (r Reveal) Visible(i int, now time.Time) bool {
	return !now.Before(r.At(i))
}

// Count is how many of n items are shown at now.
func (r Reveal) Count(n int, now time.Time) int {
	shown := 0
	for i := range n {
		if !r.Visible(i, now) {
			break
		}
		shown++
	}
	return shown
}
