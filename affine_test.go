package adaptive

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Identity.ThenScale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{0, 0, 2, 1}
	dst := Rect{0, 0, 100, 100}

	aff := FitRect(src, dst, false)
	assertNear(t, src.Center().Transform(aff), Pt(50, 50), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 25), epsilon)
	assertNear(t, Pt(2, 1).Transform(aff), Pt(100, 75), epsilon)

	flipped := FitRect(src, dst, true)
	assertNear(t, Pt(0, 0).Transform(flipped), Pt(0, 75), epsilon)
	assertNear(t, Pt(2, 1).Transform(flipped), Pt(100, 25), epsilon)

	// A horizontal segment is scaled by its width alone.
	flat := FitRect(Rect{0, 3, 4, 3}, dst, false)
	assertNear(t, Pt(0, 3).Transform(flat), Pt(0, 50), epsilon)
	assertNear(t, Pt(4, 3).Transform(flat), Pt(100, 50), epsilon)

	// A single point is moved to the center.
	dot := FitRect(Rect{7, 7, 7, 7}, dst, true)
	assertNear(t, Pt(7, 7).Transform(dot), Pt(50, 50), epsilon)
}
