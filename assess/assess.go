// Package assess validates candidate parameter lists for a curve and scores
// them by the number of points they use.
//
// It is the checking layer on top of package adaptive, whose sampling and
// evaluation routines trust their input.
package assess

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/floats"

	"honnef.co/go/adaptive"
)

// ErrInvalidInput is matched by all errors that reject a parameter list.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Validate checks that ts is usable as a discretization of the parameter
// domain: it must have at least two values, be sorted, lie within [0, 1], and
// start with 0 and end with 1. Out-of-range values are reported before
// ordering problems.
func Validate(ts []float64) error {
	if len(ts) < 2 {
		return invalid("need at least two parameters, got %d", len(ts))
	}
	if floats.HasNaN(ts) {
		return invalid("parameters contain NaN")
	}
	if lo := floats.Min(ts); lo < 0 {
		return invalid("cannot evaluate negative parameter %g", lo)
	}
	if hi := floats.Max(ts); hi > 1 {
		return invalid("cannot evaluate parameter %g > 1", hi)
	}
	if !slices.IsSorted(ts) {
		return invalid("parameters aren't sorted")
	}
	if ts[0] != 0 || ts[len(ts)-1] != 1 {
		return invalid("parameters must start with 0 and end with 1")
	}
	return nil
}

// Assessment describes the polyline resulting from evaluating a curve at a
// list of parameters.
type Assessment struct {
	// Points is the number of evaluated points.
	Points          int
	StartVelocity   float64
	EndVelocity     float64
	MaxAcceleration float64
	Threshold       float64
}

// Exceeded reports whether the polyline's acceleration is above the
// threshold.
func (a Assessment) Exceeded() bool {
	return a.MaxAcceleration > a.Threshold
}

func (a Assessment) Rating() Rating {
	return RatePoints(a.Points)
}

// Report writes a human-readable verdict to w.
func (a Assessment) Report(w io.Writer) error {
	if a.Exceeded() {
		_, err := fmt.Fprintf(w, "max_acc=%g exceeds acc_threshold=%g!\n", a.MaxAcceleration, a.Threshold)
		return err
	}
	_, err := fmt.Fprintf(w, "You used %d points... that's...\n%s\n", a.Points, a.Rating().Message())
	return err
}

// Params assesses the parameter list ts for curve c.
//
// ts is validated first. A duplicated first or last parameter, as produced by
// [adaptive.Discretize], is evaluated only once. Acceleration above threshold
// is reported in the assessment and is not an error. The only errors are
// those matching [ErrInvalidInput] and [adaptive.ErrUnimplemented].
func Params(c adaptive.Curve, ts []float64, threshold float64) (Assessment, error) {
	if err := Validate(ts); err != nil {
		return Assessment{}, err
	}
	pts, err := adaptive.TryEvalAll(c, trimPadding(ts))
	if err != nil {
		return Assessment{}, err
	}
	startVel, endVel, maxAcc := adaptive.VelocityAcceleration(pts)
	return Assessment{
		Points:          len(pts),
		StartVelocity:   startVel,
		EndVelocity:     endVel,
		MaxAcceleration: maxAcc,
		Threshold:       threshold,
	}, nil
}

// Curve discretizes c with opts and assesses the result against
// opts.Threshold.
func Curve(ctx context.Context, c adaptive.Curve, opts adaptive.DiscretizeOptions) (Assessment, []float64, error) {
	ts, err := adaptive.DiscretizeContext(ctx, c, opts)
	if err != nil {
		return Assessment{}, nil, err
	}
	// Validate requires sorted input.
	slices.Sort(ts)
	a, err := Params(c, ts, opts.Threshold)
	return a, ts, err
}

func trimPadding(ts []float64) []float64 {
	if len(ts) > 2 && ts[0] == ts[1] {
		ts = ts[1:]
	}
	if n := len(ts); n > 2 && ts[n-1] == ts[n-2] {
		ts = ts[:n-1]
	}
	return ts
}
