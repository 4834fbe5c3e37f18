package adaptive

import "gonum.org/v1/gonum/floats"

// Differences returns the first differences of pts, pts[i+1]−pts[i].
func Differences(pts []Point) []Vec2 {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Vec2, len(pts)-1)
	for i := range out {
		out[i] = pts[i+1].Sub(pts[i])
	}
	return out
}

// Velocities returns the Euclidean norms of the first differences of pts.
func Velocities(pts []Point) []float64 {
	return norms(Differences(pts))
}

// Accelerations returns the Euclidean norms of the second differences of pts.
func Accelerations(pts []Point) []float64 {
	return norms(secondDifferences(Differences(pts)))
}

// VelocityAcceleration estimates the motion along a polyline. startVel and
// endVel are the norms of the first and last first differences and maxAcc is
// the largest norm among the second differences.
//
// The input is not validated. With fewer than two points both velocities are
// zero, and with fewer than three points maxAcc is zero.
func VelocityAcceleration(pts []Point) (startVel, endVel, maxAcc float64) {
	d1 := Differences(pts)
	if len(d1) == 0 {
		return 0, 0, 0
	}
	vels := norms(d1)
	startVel, endVel = vels[0], vels[len(vels)-1]

	accs := norms(secondDifferences(d1))
	if len(accs) == 0 {
		return startVel, endVel, 0
	}
	return startVel, endVel, floats.Max(accs)
}

func secondDifferences(d1 []Vec2) []Vec2 {
	if len(d1) < 2 {
		return nil
	}
	out := make([]Vec2, len(d1)-1)
	for i := range out {
		out[i] = d1[i+1].Sub(d1[i])
	}
	return out
}

func norms(vs []Vec2) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Hypot()
	}
	return out
}
