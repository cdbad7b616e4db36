package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/driftfield/internal/particles"
)

// Glow is drawn as this many concentric translucent discs.
const glowRings = 3

const haloStrength = 0.3

// imageSurface draws onto the ebiten image handed to Draw.
type imageSurface struct {
	dst           *ebiten.Image
	width, height int
	background    color.RGBA
}

func newImageSurface() *imageSurface {
	return &imageSurface{background: color.RGBA{R: 8, G: 10, B: 20, A: 255}}
}

func nrgba(c particles.RGB, opacity float64) color.NRGBA {
	opacity = min(max(opacity, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity * 255)}
}

func (s *imageSurface) SetSize(width, height int) {
	s.width, s.height = width, height
}

func (s *imageSurface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.background)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1 float64, st particles.Stroke) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(st.Width), nrgba(st.Color, st.Opacity), true)
}

func (s *imageSurface) FillCircle(x, y, r float64, f particles.Fill) {
	if s.dst == nil {
		return
	}
	if f.Blur > 0 {
		halo := nrgba(f.Color, f.Opacity*haloStrength/glowRings)
		for i := glowRings; i >= 1; i-- {
			vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r+f.Blur*float64(i)/glowRings), halo, true)
		}
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), nrgba(f.Color, f.Opacity), true)
}
