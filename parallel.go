package adaptive

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DiscretizeOptions specifies settings for [DiscretizeContext] and
// [SampleRangeContext].
type DiscretizeOptions struct {
	// Threshold is the acceleration threshold, see [SampleRange].
	Threshold float64
	// Workers is the maximum number of goroutines sampling concurrently.
	// Values below 1 select runtime.GOMAXPROCS(0). Values above
	// [MaxWorkersPerCPU] times runtime.GOMAXPROCS(0) are clamped to that.
	Workers int
}

// MaxWorkersPerCPU bounds [DiscretizeOptions.Workers] relative to
// runtime.GOMAXPROCS(0). The subdivision tree is expanded breadth first until
// there is an interval per worker, so the worker count bounds its memory use.
const MaxWorkersPerCPU = 16

func (opts DiscretizeOptions) workers() int {
	procs := runtime.GOMAXPROCS(0)
	if opts.Workers < 1 {
		return procs
	}
	return min(opts.Workers, MaxWorkersPerCPU*procs)
}

// DefaultDiscretizeOptions uses [DefaultThreshold] and one worker per CPU.
var DefaultDiscretizeOptions = DiscretizeOptions{
	Threshold: DefaultThreshold,
}

// DiscretizeContext is like [Discretize] but samples independent parts of the
// curve concurrently. The result is identical to that of Discretize.
//
// Unlike Discretize, it stops early if ctx is cancelled, and it returns an
// error matching [ErrUnimplemented] instead of panicking when c can't be
// evaluated.
func DiscretizeContext(ctx context.Context, c Curve, opts DiscretizeOptions) ([]float64, error) {
	samples, _, err := SampleRangeContext(ctx, c, 0, 1, opts)
	if err != nil {
		return nil, err
	}
	return paddedParams(samples), nil
}

// subtree is an interval of the subdivision tree. Intervals that are already
// resolved carry their samples in done.
type subtree struct {
	from, to Sample
	depth    int
	resolved bool
	done     []Sample
}

// SampleRangeContext is the concurrent version of [SampleRange].
//
// The subdivision tree is first expanded breadth first until it has at least
// opts.Workers open intervals. Each of those is then sampled depth first on
// its own goroutine, and the results are concatenated in order of t.
func SampleRangeContext(ctx context.Context, c Curve, t1, t2 float64, opts DiscretizeOptions) (samples []Sample, stats Stats, err error) {
	defer recoverUnimplemented(&err)

	workers := opts.workers()

	root := &sampler{c: c, threshold: opts.Threshold}
	from := root.eval(t1)
	to := root.eval(t2)
	frontier := []subtree{{from: from, to: to}}
	for {
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}
		open := 0
		for _, st := range frontier {
			if !st.resolved {
				open++
			}
		}
		if open == 0 || open >= workers {
			Logger().Debug("fanning out subdivision", "subtrees", open, "workers", workers)
			break
		}
		next := make([]subtree, 0, len(frontier)+open)
		for _, st := range frontier {
			if st.resolved {
				next = append(next, st)
				continue
			}
			mid, done := root.step(st.from, st.to, st.depth)
			if done {
				root.stats.Leaves++
				next = append(next, subtree{resolved: true, done: []Sample{mid, st.to}})
				continue
			}
			next = append(next,
				subtree{from: st.from, to: mid, depth: st.depth + 1},
				subtree{from: mid, to: st.to, depth: st.depth + 1})
		}
		frontier = next
	}

	results := make([]*sampler, len(frontier))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, st := range frontier {
		i, st := i, st
		if st.resolved {
			continue
		}
		g.Go(func() (err error) {
			defer recoverUnimplemented(&err)
			s := &sampler{c: c, threshold: opts.Threshold, ctx: gctx}
			s.subdivide(st.from, st.to, st.depth)
			results[i] = s
			return s.err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats = root.stats
	n := 1
	for i, st := range frontier {
		if st.resolved {
			n += len(st.done)
		} else {
			n += len(results[i].out)
			stats.merge(results[i].stats)
		}
	}
	samples = make([]Sample, 0, n)
	samples = append(samples, from)
	for i, st := range frontier {
		if st.resolved {
			samples = append(samples, st.done...)
		} else {
			samples = append(samples, results[i].out...)
		}
	}
	return samples, stats, nil
}
