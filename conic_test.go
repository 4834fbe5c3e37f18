package adaptive

import (
	"errors"
	"testing"
)

func TestUnimplementedCurves(t *testing.T) {
	for _, c := range []Curve{Parabola{}, Hyperbola{}} {
		pt, err := TryEval(c, 0.5)
		if !errors.Is(err, ErrUnimplemented) {
			t.Fatalf("%T: got error %v, want ErrUnimplemented", c, err)
		}
		if pt != (Point{}) {
			t.Errorf("%T: got point %v alongside the error", c, pt)
		}
		var uerr *UnimplementedError
		if !errors.As(err, &uerr) {
			t.Fatalf("%T: error isn't an *UnimplementedError", c)
		}

		if pts, err := TryEvalAll(c, []float64{0, 1}); !errors.Is(err, ErrUnimplemented) || pts != nil {
			t.Errorf("%T: got (%v, %v), want (nil, ErrUnimplemented)", c, pts, err)
		}
	}
}

func TestUnimplementedPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnimplemented) {
			t.Errorf("got panic value %v, want ErrUnimplemented", r)
		}
	}()
	Discretize(Hyperbola{}, DefaultThreshold)
	t.Error("discretizing a hyperbola didn't panic")
}

type panicCurve struct{}

func (panicCurve) Eval(t float64) Point { panic("boom") }

func TestTryEvalPropagatesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("got panic value %v, want boom", r)
		}
	}()
	TryEval(panicCurve{}, 0)
}

func TestTryEvalSupported(t *testing.T) {
	pt, err := TryEval(Line{Pt(0, 0), Pt(2, 2)}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt, Pt(1, 1))
}
