package particles

// RGB is an opaque 8-bit colour.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hue is one of the two colour identities a particle can carry.
type Hue uint8

const (
	Cyan Hue = iota
	Violet
)

// RGB returns the colour for the hue.
func (h Hue) RGB() RGB {
	if h == Violet {
		return RGB{R: 138, G: 43, B: 226}
	}
	return RGB{R: 0, G: 245, B: 255}
}

func (h Hue) String() string {
	if h == Violet {
		return "violet"
	}
	return "cyan"
}

// Rand is the random source a field draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Bounds is the viewport rectangle, anchored at the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the closed rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Particle is one drifting point of the field.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Hue     Hue
}

// RandomParticle draws a fresh particle anywhere inside b. Values are drawn
// from r in a fixed order: x, y, vx, vy, radius, opacity, hue.
func RandomParticle(b Bounds, r Rand) Particle {
	p := Particle{
		X:       r.Float64() * b.Width,
		Y:       r.Float64() * b.Height,
		VX:      (r.Float64() - 0.5) * 0.4,
		VY:      (r.Float64() - 0.5) * 0.4,
		Radius:  r.Float64()*1.5 + 0.3,
		Opacity: r.Float64()*0.5 + 0.1,
	}
	if r.Float64() > 0.5 {
		p.Hue = Violet
	}
	return p
}

// step moves p by its velocity and reports whether it is still inside b.
func (p *Particle) step(b Bounds) bool {
	p.X += p.VX
	p.Y += p.VY
	return b.Contains(p.X, p.Y)
}
