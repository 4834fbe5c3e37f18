package adaptive

import (
	"testing"
)

func TestBoundingBox(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(-3, 5), Pt(4, -1), Pt(0, 0)}
	diff(t, BoundingBox(pts), Rect{-3, -1, 4, 5})
	diff(t, BoundingBox(pts[:1]), Rect{1, 2, 1, 2})
	diff(t, BoundingBox(nil), Rect{})
}

func TestRectAbs(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 10))
	diff(t, r, Rect{0, 0, 10, 10})
	if r.Width() != 10 || r.Height() != 10 {
		t.Errorf("got size %vx%v, want 10x10", r.Width(), r.Height())
	}
	diff(t, r.Center(), Pt(5, 5))
}
