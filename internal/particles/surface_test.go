package particles

type call struct {
	kind           string
	x0, y0, x1, y1 float64
	r              float64
	stroke         Stroke
	fill           Fill
}

// recorder is a Surface that remembers every call.
type recorder struct {
	width, height int
	calls         []call
}

func (r *recorder) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, call{kind: "clear"})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1 float64, s Stroke) {
	r.calls = append(r.calls, call{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, stroke: s})
}

func (r *recorder) FillCircle(x, y, rad float64, f Fill) {
	r.calls = append(r.calls, call{kind: "circle", x0: x, y0: y, r: rad, fill: f})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// seqRand replays a fixed sequence of values, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
