package particles

// Stroke describes how a link line is drawn.
type Stroke struct {
	Color   RGB
	Opacity float64
	Width   float64
}

// Fill describes how a particle dot is drawn. Blur is the radius of the soft
// glow around the dot, in the same units as positions.
type Fill struct {
	Color   RGB
	Opacity float64
	Blur    float64
}

// Surface is the drawing target of a Field. Coordinates are in viewport
// units; each implementation maps them onto its own raster.
type Surface interface {
	SetSize(width, height int)
	Clear()
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)
	FillCircle(x, y, r float64, f Fill)
}
