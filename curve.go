package adaptive

import (
	"errors"
	"fmt"
)

// Curve describes a curve parametrized by a scalar.
//
// The parameter domain is [0, 1]. Evaluating outside of it is allowed and
// extrapolates with whatever formula the curve uses.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	//
	// Eval must be deterministic, and the curve should be continuous in t for
	// acceleration estimates to be meaningful.
	Eval(t float64) Point
}

// BatchEvaler is an optional interface implemented by curves that can
// evaluate many parameters more efficiently than by repeated calls to Eval.
//
// The results must be identical to calling Eval for each parameter.
type BatchEvaler interface {
	EvalAll(ts []float64) []Point
}

// EvalAll evaluates c at each of ts, in order.
func EvalAll(c Curve, ts []float64) []Point {
	if b, ok := c.(BatchEvaler); ok {
		return b.EvalAll(ts)
	}
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = c.Eval(t)
	}
	return out
}

// ErrUnimplemented is matched by the errors of curves that declare but don't
// implement evaluation.
var ErrUnimplemented = errors.New("unimplemented curve")

// UnimplementedError is the panic value of evaluating a curve that has no
// formula.
type UnimplementedError struct {
	// Curve names the curve, for example "Parabola".
	Curve string
}

func (err *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: evaluation is not implemented", err.Curve)
}

func (err *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}

// TryEval evaluates c at t, returning an error instead of panicking if c
// doesn't implement evaluation. Other panics are propagated.
func TryEval(c Curve, t float64) (pt Point, err error) {
	defer recoverUnimplemented(&err)
	return c.Eval(t), nil
}

// TryEvalAll is like [EvalAll] but returns an error instead of panicking if c
// doesn't implement evaluation.
func TryEvalAll(c Curve, ts []float64) (pts []Point, err error) {
	defer recoverUnimplemented(&err)
	return EvalAll(c, ts), nil
}

func recoverUnimplemented(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if uerr, ok := r.(*UnimplementedError); ok {
		*err = uerr
		return
	}
	panic(r)
}
