package adaptive

import "math"

// Ellipse is an axis-aligned ellipse. A circle is an ellipse with equal radii,
// see [NewCircle].
//
// The parameter is used as an angle in radians without rescaling: t ∈ [0, 1]
// traces one radian of arc, starting at the positive x axis. Callers that want
// a full revolution have to account for this themselves.
type Ellipse struct {
	Center Point
	// Radii holds the horizontal and vertical radius.
	Radii Vec2
}

var _ Curve = Ellipse{}

// NewEllipse returns the ellipse with the given center and radii.
func NewEllipse(center Point, rx, ry float64) Ellipse {
	return Ellipse{Center: center, Radii: Vec(rx, ry)}
}

// NewCircle returns the ellipse with both radii set to r.
func NewCircle(center Point, r float64) Ellipse {
	return NewEllipse(center, r, r)
}

// Eval returns Center + (rx·cos t, ry·sin t).
func (e Ellipse) Eval(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: e.Center.X + e.Radii.X*cos,
		Y: e.Center.Y + e.Radii.Y*sin,
	}
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || e.Radii.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || e.Radii.IsNaN()
}
