// Package barycenter - the DBA refinement loop.
//
// Design principles:
//   - Strict sentinels, no panics on user input, no logging.
//   - Inputs are read-only; all mutable state (accumulators, the evolving
//     barycenter) is owned by the running call and freshly allocated.
//   - Deterministic: the parallel alignment phase writes to per-job slots
//     and the reduction walks them in index order, so results do not
//     depend on goroutine scheduling.
package barycenter

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/warp/bounding"
	"github.com/katalvlaran/warp/elastic"
)

// alignJob identifies one alignment task of an iteration: a sequence
// index and, in independent mode, the channel it covers (ch == -1 means
// a joint dependent alignment).
type alignJob struct {
	seq int
	ch  int
}

// Average computes the elastic barycenter of X (sequences of shape
// channels × timepoints; lengths may differ, channel counts may not).
//
// Contract:
//   - Non-empty X; every sequence non-empty and rectangular.
//   - The result has the shape of the seed barycenter (opts.Init when
//     given, otherwise the seed built by opts.Policy).
//   - A single-sequence collection or MaxIters == 0 returns the seed
//     unchanged, with zero iterations.
//
// Errors: ErrEmptyCollection, ErrEmptySequence, ErrChannelMismatch,
// ErrBadOption, plus bounding and elastic sentinels forwarded from the
// mask construction and alignment stages.
//
// Complexity: O(MaxIters · N · n·m · channels), parallel across Workers
// within one iteration.
func Average(X [][][]float64, opts *Options) ([][]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateCollection(X, o); err != nil {
		return nil, err
	}

	seed, err := resolveSeed(X, o)
	if err != nil {
		return nil, err
	}
	if len(X) == 1 || o.MaxIters == 0 {
		return seed, nil
	}

	// One mask per distinct sequence length, shared by all iterations:
	// the barycenter length is fixed at initialization.
	var (
		bOpts  = bounding.Options{Window: o.Window, ItakuraMaxSlope: o.ItakuraMaxSlope}
		barLen = elastic.TransformedLength(o.Metric, len(seed[0]))
		masks  = make(map[int]bounding.Matrix)
	)
	for _, seq := range X {
		n := len(seq[0])
		if _, ok := masks[n]; ok {
			continue
		}
		bm, berr := bounding.New(barLen, elastic.TransformedLength(o.Metric, n), bOpts)
		if berr != nil {
			return nil, berr
		}
		masks[n] = bm
	}

	var (
		jobs     = makeJobs(X, o)
		paths    = make([]elastic.Path, len(jobs))
		costs    = make([]float64, len(jobs))
		bary     = seed
		prev     = seed
		prevCost = math.Inf(1)
	)
	for iter := 0; iter < o.MaxIters; iter++ {
		total, aerr := alignAll(bary, X, o, masks, jobs, paths, costs)
		if aerr != nil {
			return nil, aerr
		}
		if o.OnIteration != nil {
			o.OnIteration(iter, total)
		}
		if total >= prevCost {
			// The previous iterate scored better; keep it.
			return prev, nil
		}

		converged := !math.IsInf(prevCost, 1) && (prevCost-total)/prevCost < o.Tol
		prev, prevCost = bary, total
		bary = refine(bary, X, o, jobs, paths)
		if converged {
			break
		}
	}

	return bary, nil
}

// validateCollection enforces the collection contract and option ranges.
func validateCollection(x [][][]float64, o Options) error {
	if len(x) == 0 {
		return ErrEmptyCollection
	}
	channels := len(x[0])
	for _, seq := range x {
		if len(seq) == 0 || len(seq[0]) == 0 {
			return ErrEmptySequence
		}
		if len(seq) != channels {
			return ErrChannelMismatch
		}
		for c := range seq {
			if len(seq[c]) != len(seq[0]) {
				return ErrChannelMismatch
			}
		}
	}
	if o.MaxIters < 0 || o.Tol < 0 || o.Workers < 0 {
		return ErrBadOption
	}

	return nil
}

// resolveSeed returns a fresh copy of the caller-supplied seed, or
// builds one via the configured policy.
func resolveSeed(x [][][]float64, o Options) ([][]float64, error) {
	if o.Init == nil {
		return buildSeed(x, o)
	}
	if len(o.Init) != len(x[0]) || len(o.Init[0]) == 0 {
		return nil, ErrChannelMismatch
	}
	for c := range o.Init {
		if len(o.Init[c]) != len(o.Init[0]) {
			return nil, ErrChannelMismatch
		}
	}

	return cloneSeq(o.Init), nil
}

// makeJobs enumerates the alignment tasks of one iteration: one joint
// job per sequence in dependent mode, one per (sequence, channel) in
// independent mode.
func makeJobs(x [][][]float64, o Options) []alignJob {
	if !o.Independent {
		jobs := make([]alignJob, len(x))
		for i := range jobs {
			jobs[i] = alignJob{seq: i, ch: -1}
		}

		return jobs
	}

	var (
		channels = len(x[0])
		jobs     = make([]alignJob, 0, len(x)*channels)
	)
	for i := range x {
		for c := 0; c < channels; c++ {
			jobs = append(jobs, alignJob{seq: i, ch: c})
		}
	}

	return jobs
}

// alignAll runs every alignment job of one iteration across a bounded
// worker pool, writing each result to its own slot, and reduces the
// total cost after the barrier. The first job error (in index order)
// aborts the call.
func alignAll(
	bary [][]float64,
	x [][][]float64,
	o Options,
	masks map[int]bounding.Matrix,
	jobs []alignJob,
	paths []elastic.Path,
	costs []float64,
) (float64, error) {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var (
		wg   sync.WaitGroup
		next int64
		errs = make([]error, len(jobs))
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				k := int(atomic.AddInt64(&next, 1)) - 1
				if k >= len(jobs) {
					return
				}
				var (
					job  = jobs[k]
					seq  = x[job.seq]
					bm   = masks[len(seq[0])]
					path elastic.Path
					cost float64
					err  error
				)
				if job.ch < 0 {
					path, cost, err = elastic.AlignmentPath(o.Metric, bary, seq, bm, &o.Distance)
				} else {
					path, cost, err = elastic.AlignmentPath(o.Metric,
						[][]float64{bary[job.ch]}, [][]float64{seq[job.ch]}, bm, &o.Distance)
				}
				if err != nil {
					errs[k] = err

					continue
				}
				paths[k], costs[k] = path, cost
			}
		}()
	}
	wg.Wait()

	var total float64
	for k := range jobs {
		if errs[k] != nil {
			return 0, errs[k]
		}
		total += costs[k]
	}

	return total, nil
}

// refine produces the next barycenter: each position becomes the mean
// of the values aligned to it across all paths; positions with no
// contributions keep their previous value (never a division by zero).
// Derivative metrics align in derivative space, so their path indices
// are shifted by one back into value space; the untouched end points
// keep their previous values.
func refine(bary [][]float64, x [][][]float64, o Options, jobs []alignJob, paths []elastic.Path) [][]float64 {
	var (
		channels = len(bary)
		length   = len(bary[0])
		offset   = 0
		sums     = make([][]float64, channels)
		counts   = make([][]float64, channels)
	)
	if o.Metric == elastic.DDTW || o.Metric == elastic.WDDTW {
		offset = 1
	}
	for c := 0; c < channels; c++ {
		sums[c] = make([]float64, length)
		counts[c] = make([]float64, length)
	}

	for k, job := range jobs {
		seq := x[job.seq]
		if job.ch < 0 {
			for _, p := range paths[k] {
				for c := 0; c < channels; c++ {
					sums[c][p.I+offset] += seq[c][p.J+offset]
					counts[c][p.I+offset]++
				}
			}

			continue
		}
		for _, p := range paths[k] {
			sums[job.ch][p.I+offset] += seq[job.ch][p.J+offset]
			counts[job.ch][p.I+offset]++
		}
	}

	out := cloneSeq(bary)
	for c := 0; c < channels; c++ {
		for t := 0; t < length; t++ {
			if counts[c][t] > 0 {
				out[c][t] = sums[c][t] / counts[c][t]
			}
		}
	}

	return out
}

// cloneSeq deep-copies a (channels × timepoints) sequence.
func cloneSeq(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for c := range x {
		out[c] = make([]float64, len(x[c]))
		copy(out[c], x[c])
	}

	return out
}
