package adaptive

// Parabola is a placeholder for parabolic arcs. It has no parametrization yet
// and panics with an [*UnimplementedError] when evaluated.
type Parabola struct{}

// Hyperbola is a placeholder for hyperbolic arcs. It has no parametrization
// yet and panics with an [*UnimplementedError] when evaluated.
type Hyperbola struct{}

var _ Curve = Parabola{}
var _ Curve = Hyperbola{}

func (Parabola) Eval(t float64) Point {
	panic(&UnimplementedError{Curve: "Parabola"})
}

func (Hyperbola) Eval(t float64) Point {
	panic(&UnimplementedError{Curve: "Hyperbola"})
}
