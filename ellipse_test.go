package adaptive

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEllipseEval(t *testing.T) {
	e := NewEllipse(Pt(1, 1), 3, 2)
	diff(t, e.Eval(0), Pt(4, 1))

	// The parameter is an angle in radians, not a fraction of a turn.
	want := Pt(1+3*math.Cos(1), 1+2*math.Sin(1))
	diff(t, e.Eval(1), want, cmpopts.EquateApprox(0, 1e-15))
	diff(t, e.Eval(math.Pi/2), Pt(1, 3), cmpopts.EquateApprox(0, 1e-15))
}

func TestCircle(t *testing.T) {
	c := NewCircle(Pt(1, 1), 5)
	diff(t, c.Radii, Vec(5, 5))
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		if d := c.Eval(tt).Sub(c.Center).Hypot(); math.Abs(d-5) > 1e-12 {
			t.Errorf("point at t=%v is %v away from the center, want 5", tt, d)
		}
	}
}

func TestSpiralEndpoints(t *testing.T) {
	s := NewSpiral()
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, s.Eval(0), Pt(-1, 0), opt)
	diff(t, s.Eval(0.5), Pt(0, 2.5), opt)
	diff(t, s.Eval(1), Pt(4, 0), opt)
}

func TestCurveFinite(t *testing.T) {
	tests := []struct {
		name     string
		nan, inf bool
		c        interface {
			IsNaN() bool
			IsInf() bool
		}
	}{
		{"ellipse", false, false, NewEllipse(Pt(1, 1), 3, 2)},
		{"ellipse nan radius", true, false, NewEllipse(Pt(1, 1), math.NaN(), 2)},
		{"ellipse inf center", false, true, NewCircle(Pt(math.Inf(1), 0), 1)},
		{"spiral", false, false, NewSpiral()},
		{"spiral nan sweep", true, false, Spiral{Radius: 1, Sweep: math.NaN()}},
		{"spiral inf growth", false, true, Spiral{Radius: 1, Growth: math.Inf(-1)}},
	}
	for _, tt := range tests {
		if got := tt.c.IsNaN(); got != tt.nan {
			t.Errorf("%s: got IsNaN = %t, want %t", tt.name, got, tt.nan)
		}
		if got := tt.c.IsInf(); got != tt.inf {
			t.Errorf("%s: got IsInf = %t, want %t", tt.name, got, tt.inf)
		}
	}
}
