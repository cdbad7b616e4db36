package visualizer

import (
	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/driftfield/internal/particles"
)

// GlowRadius is the reach of the cursor glow in viewport units.
const GlowRadius = 180.0

// Glow is a soft light that trails the pointer. Its position eases toward the
// last pointer position on every Step.
type Glow struct {
	spring harmonica.Spring
	x, vx  float64
	y, vy  float64
	tx, ty float64
	active bool
}

// NewGlow returns a hidden glow stepped fps times per second.
func NewGlow(fps int) *Glow {
	if fps <= 0 {
		fps = 60
	}
	return &Glow{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// SetTarget moves the pointer position. The first target after the glow is
// shown places it directly.
func (g *Glow) SetTarget(x, y float64) {
	if !g.active {
		g.x, g.y = x, y
		g.vx, g.vy = 0, 0
	}
	g.tx, g.ty = x, y
	g.active = true
}

// Hide stops drawing the glow until the next SetTarget.
func (g *Glow) Hide() { g.active = false }

func (g *Glow) Active() bool { return g.active }

func (g *Glow) Position() (x, y float64) { return g.x, g.y }

// Step advances the spring by one frame.
func (g *Glow) Step() {
	if !g.active {
		return
	}
	g.x, g.vx = g.spring.Update(g.x, g.vx, g.tx)
	g.y, g.vy = g.spring.Update(g.y, g.vy, g.ty)
}

// Draw tints the dots around the glow on b.
func (g *Glow) Draw(b *Braille) {
	if !g.active {
		return
	}
	b.Highlight(g.x, g.y, GlowRadius, particles.Cyan.RGB(), 0.6)
}
