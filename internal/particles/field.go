// Package particles implements the drifting particle field: a fixed pool of
// points that move with constant velocity, are reborn at random when they
// leave the viewport, and are drawn with faint links between close pairs.
package particles

import (
	"errors"
	"math/rand/v2"
)

// ErrNilSurface is returned by New when no drawing surface is supplied.
var ErrNilSurface = errors.New("particles: nil surface")

// Options tunes a Field. Start from DefaultOptions.
type Options struct {
	Count          int
	LinkDistance   float64
	MaxLinkOpacity float64
	LinkWidth      float64
	LinkColor      RGB
	Blur           float64
	// GridCutoff is the pool size above which link search switches from the
	// exhaustive pair scan to grid binning. Zero disables the grid.
	GridCutoff int
}

// DefaultOptions returns the stock look of the field.
func DefaultOptions() Options {
	return Options{
		Count:          80,
		LinkDistance:   120,
		MaxLinkOpacity: 0.12,
		LinkWidth:      0.5,
		LinkColor:      Cyan.RGB(),
		Blur:           8,
		GridCutoff:     400,
	}
}

// Stats counts what the field has done so far.
type Stats struct {
	Frames uint64
	Resets uint64
	Links  int // drawn in the last Render
}

// Field owns a particle pool and the surface it draws on. A Field is not safe
// for concurrent use.
type Field struct {
	opts      Options
	rng       Rand
	surface   Surface
	bounds    Bounds
	particles []Particle
	links     []Link
	stats     Stats
}

// New builds an empty field. A nil rng is replaced by a randomly seeded one.
func New(s Surface, rng Rand, opts Options) (*Field, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Count < 0 {
		opts.Count = 0
	}
	return &Field{opts: opts, rng: rng, surface: s}, nil
}

// Options returns the options the field was built with.
func (f *Field) Options() Options { return f.opts }

// Bounds returns the current viewport.
func (f *Field) Bounds() Bounds { return f.bounds }

// Stats returns the running counters.
func (f *Field) Stats() Stats { return f.stats }

// Len returns the pool size.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the pool.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Resize sets the viewport and the surface to width x height. Existing
// particles are left where they are; call Initialize to rebuild the pool.
func (f *Field) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	f.bounds = Bounds{Width: float64(width), Height: float64(height)}
	f.surface.SetSize(width, height)
}

// Initialize discards the pool and fills it with n fresh particles.
func (f *Field) Initialize(n int) {
	n = max(n, 0)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = RandomParticle(f.bounds, f.rng)
	}
}

// Reset handles a viewport change: resize, then rebuild the pool at the
// configured count.
func (f *Field) Reset(width, height int) {
	f.Resize(width, height)
	f.Initialize(f.opts.Count)
}

// Tick advances every particle by one frame. A particle that leaves the
// viewport on either axis is replaced in place by a new random one.
func (f *Field) Tick() {
	for i := range f.particles {
		if !f.particles[i].step(f.bounds) {
			f.particles[i] = RandomParticle(f.bounds, f.rng)
			f.stats.Resets++
		}
	}
	f.stats.Frames++
}

// Render clears the surface, strokes the proximity links, then fills every
// particle on top of them. It returns the number of links drawn.
func (f *Field) Render() int {
	f.surface.Clear()

	if f.opts.GridCutoff > 0 && len(f.particles) > f.opts.GridCutoff {
		f.links = appendGridLinks(f.links[:0], f.particles, f.opts.LinkDistance)
	} else {
		f.links = appendLinks(f.links[:0], f.particles, f.opts.LinkDistance)
	}

	for _, l := range f.links {
		a, b := f.particles[l.I], f.particles[l.J]
		f.surface.StrokeLine(a.X, a.Y, b.X, b.Y, Stroke{
			Color:   f.opts.LinkColor,
			Opacity: LinkOpacity(l.Distance, f.opts.LinkDistance, f.opts.MaxLinkOpacity),
			Width:   f.opts.LinkWidth,
		})
	}

	for _, p := range f.particles {
		f.surface.FillCircle(p.X, p.Y, p.Radius, Fill{
			Color:   p.Hue.RGB(),
			Opacity: p.Opacity,
			Blur:    f.opts.Blur,
		})
	}

	f.stats.Links = len(f.links)
	return len(f.links)
}

// Frame runs one Tick followed by one Render.
func (f *Field) Frame() int {
	f.Tick()
	return f.Render()
}
