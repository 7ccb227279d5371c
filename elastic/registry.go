// Package elastic - static measure registry and public entry points.
//
// Design principles:
//   - Closed set of measures resolved through a static table built at
//     package init; unknown tags fail fast with ErrUnknownMetric.
//   - Unified validation: every entry point runs the same input checks
//     before touching a cost matrix, so measures never see bad shapes.
//   - Deterministic, side-effect free; no logging, no panics on user input.
package elastic

import "github.com/katalvlaran/warp/bounding"

// measure bundles the two operations every elastic distance exposes.
type measure struct {
	cost func(x, y [][]float64, bm bounding.Matrix, o Options) float64
	path func(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64)
}

// registry maps every Metric tag to its implementation. The table is
// immutable after init.
var registry = map[Metric]measure{
	DTW:      {cost: dtwCost, path: dtwPath},
	DDTW:     {cost: ddtwCost, path: ddtwPath},
	WDTW:     {cost: wdtwCost, path: wdtwPath},
	WDDTW:    {cost: wddtwCost, path: wddtwPath},
	ERP:      {cost: erpCost, path: erpPath},
	EDR:      {cost: edrCost, path: edrPath},
	TWE:      {cost: tweCost, path: twePath},
	MSM:      {cost: msmCost, path: msmPath},
	ShapeDTW: {cost: shapeDTWCost, path: shapeDTWPath},
	ADTW:     {cost: adtwCost, path: adtwPath},
}

// Distance computes the scalar elastic cost of aligning x with y under
// metric m, restricted to cells where bm is true.
//
// Contract:
//   - x, y are (channels × timepoints); equal channel counts, any lengths.
//   - bm must be shaped (TransformedLength(m, len x) × TransformedLength(m, len y)).
//   - opts may be nil (defaults apply).
//
// A mask admitting no path yields +Inf with a nil error.
//
// Errors: ErrEmptySequence, ErrChannelMismatch, ErrTooShort,
// ErrBoundingShape, ErrBadOption, ErrUnknownMetric.
//
// Complexity: O(n·m·channels) time, O(n·m) memory.
func Distance(m Metric, x, y [][]float64, bm bounding.Matrix, opts *Options) (float64, error) {
	impl, o, err := prepare(m, x, y, bm, opts)
	if err != nil {
		return 0, err
	}

	return impl.cost(x, y, bm, o), nil
}

// AlignmentPath computes the optimal alignment path together with the
// scalar cost. A mask admitting no path is an error here (a path is
// the whole point of the call): ErrBlockedPath.
//
// Errors: those of Distance, plus ErrBlockedPath.
//
// Complexity: O(n·m·channels) time, O(n·m) memory.
func AlignmentPath(m Metric, x, y [][]float64, bm bounding.Matrix, opts *Options) (Path, float64, error) {
	impl, o, err := prepare(m, x, y, bm, opts)
	if err != nil {
		return nil, 0, err
	}

	path, dist := impl.path(x, y, bm, o)
	if path == nil {
		return nil, dist, ErrBlockedPath
	}

	return path, dist, nil
}

// prepare resolves the metric, applies option defaults and validates
// the inputs against the shared contract.
func prepare(m Metric, x, y [][]float64, bm bounding.Matrix, opts *Options) (measure, Options, error) {
	impl, ok := registry[m]
	if !ok {
		return measure{}, Options{}, ErrUnknownMetric
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return measure{}, Options{}, err
	}
	if err := validatePair(m, x, y, bm); err != nil {
		return measure{}, Options{}, err
	}

	return impl, o, nil
}

// validateOptions rejects negative measure parameters.
func validateOptions(o Options) error {
	if o.G < 0 || o.Epsilon < 0 || o.Nu < 0 || o.Lambda < 0 ||
		o.C < 0 || o.WarpPenalty < 0 || o.Reach < 0 {
		return ErrBadOption
	}

	return nil
}

// validatePair enforces the shared shape contract: non-empty sequences,
// agreeing channel counts, rectangular channels, sufficient length for
// the metric, and a bounding mask matching the transformed lengths.
func validatePair(m Metric, x, y [][]float64, bm bounding.Matrix) error {
	n, mm := seqLen(x), seqLen(y)
	if len(x) == 0 || len(y) == 0 || n == 0 || mm == 0 {
		return ErrEmptySequence
	}
	if len(x) != len(y) {
		return ErrChannelMismatch
	}
	for c := range x {
		if len(x[c]) != n {
			return ErrChannelMismatch
		}
	}
	for c := range y {
		if len(y[c]) != mm {
			return ErrChannelMismatch
		}
	}

	tn, tm := TransformedLength(m, n), TransformedLength(m, mm)
	if tn < 1 || tm < 1 {
		return ErrTooShort
	}
	if bm.Rows() != tn || bm.Cols() != tm {
		return ErrBoundingShape
	}

	return nil
}
