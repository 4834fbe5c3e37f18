// Package adaptive discretizes parametric 2D curves into sequences of
// parameter values. It picks as few parameters as it can while keeping the
// discrete acceleration of the resulting polyline below a threshold.
//
// # Curves
//
// [Curve] describes curves parametrized by a scalar t ∈ [0, 1]. Evaluating a
// curve at t returns an (x, y) pair, interpreted as a point in a 2D Cartesian
// coordinate system. The simplest curve is the [Line], whose evaluation is a
// linear interpolation between its start and end points.
//
// This package includes the following curves:
//   - [Line]
//   - [Ellipse] (and circles, see [NewCircle])
//   - [Spiral]
//   - [Parabola] and [Hyperbola], which are declared but not implemented.
//     Evaluating them panics with an [*UnimplementedError]; use [TryEval] and
//     [TryEvalAll] to receive the error as a value instead.
//
// [EvalAll] evaluates a curve at many parameters at once. Curves can speed
// this up by implementing [BatchEvaler].
//
// # Adaptive sampling
//
// [SampleRange] recursively halves a parameter interval. For every interval it
// evaluates the midpoint and estimates the acceleration of the three points
// from, mid and to with finite differences (see [VelocityAcceleration]). If
// the acceleration is at most the threshold, the interval is done; otherwise
// both halves are sampled further. Subdivision never goes deeper than
// [MaxDepth] halvings, so discontinuous curves and unreachable thresholds still
// terminate.
//
// [Discretize] samples the full domain [0, 1] and returns the parameters only.
// By convention the first and last parameters are emitted twice, as in
//
//	[0, 0, 0.5, 1, 1]
//
// for a straight line. [DiscretizeContext] computes the same result, spreading
// independent subtrees of the subdivision across goroutines.
//
// "Velocity" and "acceleration" are not derivatives. They are the norms of the
// first and second differences of consecutive points, and the threshold is
// compared against those raw magnitudes. Because halving an interval shrinks
// the second difference of a smooth curve roughly fourfold, subdivision
// converges.
//
// # Output
//
// [PolylineSVG] and [WritePolylineSVG] turn sampled points into SVG path
// commands. [BoundingBox] computes the extents of a set of points.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog] logger
// that receives debug records, for example whenever the depth bound cuts a
// subdivision short.
package adaptive
