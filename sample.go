package adaptive

import "context"

// MaxDepth is the maximum number of times [SampleRange] halves the initial
// interval. Intervals at this depth are accepted regardless of their
// acceleration, which bounds the work done on discontinuous curves and on
// thresholds that can't be met.
const MaxDepth = 50

// DefaultThreshold is a default acceleration threshold for [Discretize].
const DefaultThreshold = 0.1

// Sample is a curve parameter together with the point it evaluates to.
type Sample struct {
	T  float64
	Pt Point
}

// Stats describes the work done by a sampling run.
type Stats struct {
	// Evals is the number of curve evaluations.
	Evals int
	// Leaves is the number of intervals that weren't subdivided further.
	Leaves int
	// MaxDepth is the deepest subdivision level that was visited. The initial
	// interval has depth 0.
	MaxDepth int
	// DepthLimited is the number of intervals that were accepted only because
	// they reached [MaxDepth].
	DepthLimited int
}

func (st *Stats) merge(o Stats) {
	st.Evals += o.Evals
	st.Leaves += o.Leaves
	st.MaxDepth = max(st.MaxDepth, o.MaxDepth)
	st.DepthLimited += o.DepthLimited
}

type sampler struct {
	c         Curve
	threshold float64
	out       []Sample
	stats     Stats

	// ctx is only set when sampling runs on behalf of DiscretizeContext.
	ctx context.Context
	err error
}

func (s *sampler) eval(t float64) Sample {
	s.stats.Evals++
	return Sample{T: t, Pt: s.c.Eval(t)}
}

// step evaluates the midpoint of [from, to] and reports whether the interval
// is sampled finely enough.
func (s *sampler) step(from, to Sample, depth int) (mid Sample, done bool) {
	mid = s.eval(0.5 * (from.T + to.T))
	s.stats.MaxDepth = max(s.stats.MaxDepth, depth)

	_, _, acc := VelocityAcceleration([]Point{from.Pt, mid.Pt, to.Pt})
	switch {
	case acc <= s.threshold:
		return mid, true
	case depth >= MaxDepth:
		s.stats.DepthLimited++
		Logger().Debug("subdivision stopped at depth bound",
			"from", from.T, "to", to.T, "depth", depth, "acceleration", acc)
		return mid, true
	default:
		return mid, false
	}
}

func (s *sampler) subdivide(from, to Sample, depth int) {
	if s.err != nil {
		return
	}
	if s.ctx != nil && s.stats.Evals&0xff == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}
	mid, done := s.step(from, to, depth)
	if done {
		// from has already been emitted by whoever produced it.
		s.stats.Leaves++
		s.out = append(s.out, mid, to)
		return
	}
	s.subdivide(from, mid, depth+1)
	s.subdivide(mid, to, depth+1)
}

// SampleRange adaptively samples c on [t1, t2].
//
// The interval is halved recursively until the acceleration of each interval's
// start, midpoint and end is at most threshold, or until the interval has been
// halved [MaxDepth] times. The result starts with the sample at t1 and is then
// followed by the midpoint and end of every accepted interval, from left to
// right. For t1 ≤ t2 the parameters are thus in ascending order.
//
// SampleRange doesn't validate its arguments. Every accepted interval
// contributes its midpoint, so the result has at least three samples.
func SampleRange(c Curve, t1, t2, threshold float64) ([]Sample, Stats) {
	s := &sampler{c: c, threshold: threshold}
	from := s.eval(t1)
	to := s.eval(t2)
	s.out = append(s.out, from)
	s.subdivide(from, to, 0)
	Logger().Debug("sampled curve",
		"samples", len(s.out), "evals", s.stats.Evals, "depth", s.stats.MaxDepth, "depthLimited", s.stats.DepthLimited)
	return s.out, s.stats
}

// Discretize adaptively samples c on [0, 1] and returns the sampled
// parameters.
//
// The first and last parameters appear twice: the result is the parameter of
// the first sample, followed by the parameters of all samples returned by
// [SampleRange], followed by the parameter of the last sample once more. A
// straight line thus discretizes to [0, 0, 0.5, 1, 1].
func Discretize(c Curve, threshold float64) []float64 {
	samples, _ := SampleRange(c, 0, 1, threshold)
	return paddedParams(samples)
}

// Params returns the parameters of samples.
func Params(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.T
	}
	return out
}

// Points returns the points of samples.
func Points(samples []Sample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = s.Pt
	}
	return out
}

func paddedParams(samples []Sample) []float64 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, 0, len(samples)+2)
	out = append(out, samples[0].T)
	for _, s := range samples {
		out = append(out, s.T)
	}
	return append(out, samples[len(samples)-1].T)
}
