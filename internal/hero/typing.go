// Package hero holds the timing logic of the hero section: the typing line,
// the eased stat counters and the staggered reveal of items.
package hero

import "time"

// Typing cadence.
const (
	TypeDelay   = 70 * time.Millisecond
	DeleteDelay = 40 * time.Millisecond
	HoldDelay   = 1800 * time.Millisecond
	StartDelay  = 900 * time.Millisecond
)

// Typewriter types a phrase one rune at a time, holds it, deletes it, and
// moves on to the next phrase, forever.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	chars    int
	deleting bool
}

// NewTypewriter cycles through phrases in order.
func NewTypewriter(phrases []string) *Typewriter {
	tw := &Typewriter{}
	for _, p := range phrases {
		if p != "" {
			tw.phrases = append(tw.phrases, []rune(p))
		}
	}
	return tw
}

// Start returns the delay before the first Step.
func (tw *Typewriter) Start() time.Duration { return StartDelay }

// Text is what is currently typed.
func (tw *Typewriter) Text() string {
	if len(tw.phrases) == 0 {
		return ""
	}
	return string(tw.phrases[tw.phrase][:tw.chars])
}

// Deleting reports whether the current phrase is being erased.
func (tw *Typewriter) Deleting() bool { return tw.deleting }

// Step types or erases one rune and returns the delay until the next Step.
func (tw *Typewriter) Step() time.Duration {
	if len(tw.phrases) == 0 {
		return HoldDelay
	}
	current := tw.phrases[tw.phrase]
	if !tw.deleting {
		tw.chars++
		if tw.chars == len(current) {
			tw.deleting = true
			return HoldDelay
		}
		return TypeDelay
	}

	tw.chars--
	if tw.chars == 0 {
		tw.deleting = false
		tw.phrase = (tw.phrase + 1) % len(tw.phrases)
		return TypeDelay
	}
	return DeleteDelay
}
