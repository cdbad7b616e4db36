package visualizer

import (
	"math"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/driftfield/internal/particles"
)

// Braille is a particles.Surface that rasterises onto Unicode Braille cells.
// Each cell is a 2x4 dot grid, so one terminal cell carries eight
// independently lit dots. Coordinates are viewport units; cellW x cellH units
// map onto one cell.
type Braille struct {
	cellW, cellH float64
	cols, rows   int
	dots         []dot
	background   particles.RGB
	profile      termenv.Profile
}

type dot struct {
	a       float64
	r, g, b float64
}

// Dots fainter than this stay unlit.
const litThreshold = 0.02

// Share of a particle's opacity carried by its glow halo.
const haloStrength = 0.3

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// NewBraille creates a surface where one terminal cell spans cellW x cellH
// viewport units. Non-positive sizes fall back to 8x16.
func NewBraille(cellW, cellH int) *Braille {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Braille{
		cellW:      float64(cellW),
		cellH:      float64(cellH),
		background: particles.RGB{R: 8, G: 10, B: 20},
		profile:    currentColorProfile(),
	}
}

// Cols returns the width of the surface in terminal cells.
func (b *Braille) Cols() int { return b.cols }

// Rows returns the height of the surface in terminal cells.
func (b *Braille) Rows() int { return b.rows }

// SetSize resizes the dot grid to cover width x height viewport units.
func (b *Braille) SetSize(width, height int) {
	cols := int(math.Ceil(float64(max(width, 0)) / b.cellW))
	rows := int(math.Ceil(float64(max(height, 0)) / b.cellH))
	if cols == b.cols && rows == b.rows {
		return
	}
	b.cols, b.rows = cols, rows
	b.dots = make([]dot, cols*2*rows*4)
}

func (b *Braille) Clear() {
	clear(b.dots)
}

func (b *Braille) dotW() float64 { return b.cellW / 2 }
func (b *Braille) dotH() float64 { return b.cellH / 4 }

// plot composites colour c at opacity a over the dot at (dx, dy).
func (b *Braille) plot(dx, dy int, c particles.RGB, a float64) {
	dotCols := b.cols * 2
	if dx < 0 || dy < 0 || dx >= dotCols || dy >= b.rows*4 || a <= 0 {
		return
	}
	a = clamp01(a)
	d := &b.dots[dy*dotCols+dx]
	na := a + d.a*(1-a)
	keep := d.a * (1 - a)
	d.r = (float64(c.R)*a + d.r*keep) / na
	d.g = (float64(c.G)*a + d.g*keep) / na
	d.b = (float64(c.B)*a + d.b*keep) / na
	d.a = na
}

// StrokeLine walks the line one dot at a time. Stroke width is below dot
// resolution and is ignored.
func (b *Braille) StrokeLine(x0, y0, x1, y1 float64, s particles.Stroke) {
	fx0, fy0 := x0/b.dotW(), y0/b.dotH()
	fx1, fy1 := x1/b.dotW(), y1/b.dotH()
	dx, dy := fx1-fx0, fy1-fy0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		b.plot(int(fx0), int(fy0), s.Color, s.Opacity)
		return
	}
	lastX, lastY := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(fx0 + dx*t))
		py := int(math.Floor(fy0 + dy*t))
		if px == lastX && py == lastY {
			continue
		}
		b.plot(px, py, s.Color, s.Opacity)
		lastX, lastY = px, py
	}
}

// FillCircle lights the dots covered by the circle (always at least the one
// under its centre) and a fading halo out to r+Blur.
func (b *Braille) FillCircle(x, y, r float64, f particles.Fill) {
	dw, dh := b.dotW(), b.dotH()
	cx, cy := int(math.Floor(x/dw)), int(math.Floor(y/dh))
	b.plot(cx, cy, f.Color, f.Opacity)

	reach := r + max(f.Blur, 0)
	x0, x1 := int(math.Floor((x-reach)/dw)), int(math.Floor((x+reach)/dw))
	y0, y1 := int(math.Floor((y-reach)/dh)), int(math.Floor((y+reach)/dh))
	for dy := y0; dy <= y1; dy++ {
		for dx := x0; dx <= x1; dx++ {
			if dx == cx && dy == cy {
				continue
			}
			d := math.Hypot((float64(dx)+0.5)*dw-x, (float64(dy)+0.5)*dh-y)
			switch {
			case d <= r:
				b.plot(dx, dy, f.Color, f.Opacity)
			case f.Blur > 0 && d <= reach:
				b.plot(dx, dy, f.Color, f.Opacity*haloStrength*(1-(d-r)/f.Blur))
			}
		}
	}
}

// Highlight pulls already lit dots within radius of (x, y) toward c and
// brightens them. Unlit dots stay unlit.
func (b *Braille) Highlight(x, y, radius float64, c particles.RGB, strength float64) {
	if radius <= 0 || strength <= 0 {
		return
	}
	dw, dh := b.dotW(), b.dotH()
	dotCols := b.cols * 2
	x0, x1 := max(int(math.Floor((x-radius)/dw)), 0), min(int(math.Floor((x+radius)/dw)), dotCols-1)
	y0, y1 := max(int(math.Floor((y-radius)/dh)), 0), min(int(math.Floor((y+radius)/dh)), b.rows*4-1)
	for dy := y0; dy <= y1; dy++ {
		for dx := x0; dx <= x1; dx++ {
			d := &b.dots[dy*dotCols+dx]
			if d.a < litThreshold {
				continue
			}
			dist := math.Hypot((float64(dx)+0.5)*dw-x, (float64(dy)+0.5)*dh-y)
			if dist > radius {
				continue
			}
			t := clamp01(strength * (1 - dist/radius))
			d.r += (float64(c.R) - d.r) * t
			d.g += (float64(c.G) - d.g) * t
			d.b += (float64(c.B) - d.b) * t
			d.a = clamp01(d.a * (1 + t))
		}
	}
}

// opacityAt returns the composited opacity of the dot under (x, y).
func (b *Braille) opacityAt(x, y float64) float64 {
	dx, dy := int(math.Floor(x/b.dotW())), int(math.Floor(y/b.dotH()))
	dotCols := b.cols * 2
	if dx < 0 || dy < 0 || dx >= dotCols || dy >= b.rows*4 {
		return 0
	}
	return b.dots[dy*dotCols+dx].a
}

// View renders the current frame as rows of coloured braille runes.
func (b *Braille) View() string {
	dotCols := b.cols * 2
	var out strings.Builder
	color := newANSIState(b.profile)
	for row := range b.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range b.cols {
			var pattern uint
			var peak, wsum, r, g, bl float64
			for dx := range 2 {
				for dy := range 4 {
					d := b.dots[(row*4+dy)*dotCols+col*2+dx]
					if d.a < litThreshold {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					peak = max(peak, d.a)
					wsum += d.a
					r += d.r * d.a
					g += d.g * d.a
					bl += d.b * d.a
				}
			}
			if pattern == 0 {
				out.WriteByte(' ')
				continue
			}
			mix := particles.RGB{R: uint8(r / wsum), G: uint8(g / wsum), B: uint8(bl / wsum)}
			color.set(&out, lerpColor(b.background, mix, math.Sqrt(peak)))
			out.WriteRune(rune(0x2800 + pattern))
		}
		color.reset(&out)
	}
	return out.String()
}
