package adaptive

// Line represents a line segment. It is the straight curve variant.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Curve = Line{}
var _ BatchEvaler = Line{}

// Eval returns P0 + t*(P1−P0).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// EvalAll implements BatchEvaler.
func (l Line) EvalAll(ts []float64) []Point {
	p0 := Vec2(l.P0)
	d := Vec2(l.P1).Sub(p0)
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = Point(p0.Add(d.Mul(t)))
	}
	return out
}

// IsInf reports whether either end point has an infinite coordinate.
func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

// IsNaN reports whether either end point has a NaN coordinate.
func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
