// Package svgcanvas records a particle frame and writes it out as SVG.
package svgcanvas

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/olivier-w/driftfield/internal/particles"
)

const haloStrength = 0.3

type line struct {
	x0, y0, x1, y1 float64
	s              particles.Stroke
}

type circle struct {
	x, y, r float64
	f       particles.Fill
}

// Canvas is a particles.Surface that keeps the last frame in memory.
type Canvas struct {
	width, height int
	background    particles.RGB
	lines         []line
	circles       []circle
}

func New() *Canvas {
	return &Canvas{background: particles.RGB{R: 8, G: 10, B: 20}}
}

func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = width, height
}

func (c *Canvas) Clear() {
	c.lines = c.lines[:0]
	c.circles = c.circles[:0]
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, s particles.Stroke) {
	c.lines = append(c.lines, line{x0: x0, y0: y0, x1: x1, y1: y1, s: s})
}

func (c *Canvas) FillCircle(x, y, r float64, f particles.Fill) {
	c.circles = append(c.circles, circle{x: x, y: y, r: r, f: f})
}

func hex(c particles.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteTo writes the recorded frame as a standalone SVG document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	doc := svg.New(cw)
	doc.Start(float64(c.width), float64(c.height))
	doc.Rect(0, 0, float64(c.width), float64(c.height), "fill:"+hex(c.background))
	for _, l := range c.lines {
		doc.Line(l.x0, l.y0, l.x1, l.y1, fmt.Sprintf("stroke:%s;stroke-opacity:%.4f;stroke-width:%g",
			hex(l.s.Color), l.s.Opacity, l.s.Width))
	}
	for _, p := range c.circles {
		fill := hex(p.f.Color)
		if p.f.Blur > 0 {
			doc.Circle(p.x, p.y, p.r+p.f.Blur/2, fmt.Sprintf("fill:%s;fill-opacity:%.4f", fill, p.f.Opacity*haloStrength))
		}
		doc.Circle(p.x, p.y, p.r, fmt.Sprintf("fill:%s;fill-opacity:%.4f", fill, p.f.Opacity))
	}
	doc.End()
	return cw.n, cw.err
}

// countingWriter keeps the first write error, since svgo does not report it.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
