package adaptive

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(2, 4), 0.25), Pt(0.5, 1))
}

func TestVecHypot(t *testing.T) {
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if h := Pt(-11, 1).Sub(Pt(-7, -2)).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
}

func TestPointFinite(t *testing.T) {
	if p := Pt(1, 2); p.IsNaN() || p.IsInf() {
		t.Errorf("%v reports being non-finite", p)
	}
	if p := Pt(math.NaN(), 2); !p.IsNaN() || p.IsInf() {
		t.Errorf("got IsNaN = %t, IsInf = %t for %v", p.IsNaN(), p.IsInf(), p)
	}
	if v := Vec(1, math.Inf(-1)); v.IsNaN() || !v.IsInf() {
		t.Errorf("got IsNaN = %t, IsInf = %t for %v", v.IsNaN(), v.IsInf(), v)
	}
}
