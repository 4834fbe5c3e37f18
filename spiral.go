package adaptive

import "math"

// Spiral is an Archimedean spiral segment. At parameter t its radius is
// Radius + Growth·t and its angle is StartAngle + Sweep·t radians.
type Spiral struct {
	Center     Point
	Radius     float64
	Growth     float64
	StartAngle float64
	Sweep      float64
}

var _ Curve = Spiral{}

// NewSpiral returns the half-turn spiral that starts at (−1, 0) and ends at
// (4, 0), sweeping through the upper half plane while its radius grows from 1
// to 4.
func NewSpiral() Spiral {
	return Spiral{
		Radius:     1,
		Growth:     3,
		StartAngle: math.Pi,
		Sweep:      -math.Pi,
	}
}

func (s Spiral) Eval(t float64) Point {
	r := s.Radius + s.Growth*t
	dir := VecFromAngle(s.StartAngle + s.Sweep*t)
	return s.Center.Translate(dir.Mul(r))
}

func (s Spiral) IsInf() bool {
	return s.Center.IsInf() || math.IsInf(s.Radius, 0) || math.IsInf(s.Growth, 0) ||
		math.IsInf(s.StartAngle, 0) || math.IsInf(s.Sweep, 0)
}

func (s Spiral) IsNaN() bool {
	return s.Center.IsNaN() || math.IsNaN(s.Radius) || math.IsNaN(s.Growth) ||
		math.IsNaN(s.StartAngle) || math.IsNaN(s.Sweep)
}
