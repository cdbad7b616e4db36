package visualizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/olivier-w/driftfield/internal/particles"
)

var (
	profileOnce sync.Once
	profile     termenv.Profile
	seqCache    sync.Map
)

// currentColorProfile honours NO_COLOR and CLICOLOR_FORCE on top of the
// terminal's detected capabilities.
func currentColorProfile() termenv.Profile {
	profileOnce.Do(func() {
		profile = termenv.EnvColorProfile()
	})
	return profile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpColor(a, b particles.RGB, t float64) particles.RGB {
	t = clamp01(t)
	return particles.RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func hexColor(c particles.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type ansiState struct {
	profile termenv.Profile
	current uint32
}

func newANSIState(p termenv.Profile) ansiState {
	return ansiState{profile: p, current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c particles.RGB) {
	if s.profile == termenv.Ascii {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == termenv.Ascii || s.current == ^uint32(0) {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = ^uint32(0)
}

func colorSequence(p termenv.Profile, c particles.RGB) string {
	key := uint32(p)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	if code := p.Color(hexColor(c)).Sequence(false); code != "" {
		seq = termenv.CSI + code + "m"
	}

	seqCache.Store(key, seq)
	return seq
}
