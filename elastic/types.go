// Package elastic - metric tags, path types and options.
package elastic

import "strconv"

// Coord is one cell of an alignment path: I indexes the first sequence,
// J the second.
type Coord struct {
	I int
	J int
}

// Path is a monotonic, cell-connected alignment from (0,0) to
// (n-1, m-1), restricted to reachable cells of the bounding mask.
type Path []Coord

// Metric tags one elastic distance measure. The set is closed: every
// tag maps to an implementation in the package registry, and unknown
// tags fail fast with ErrUnknownMetric.
type Metric int

const (
	// DTW is classic dynamic time warping with squared pointwise cost.
	DTW Metric = iota

	// DDTW is DTW over the Keogh derivative transform.
	DDTW

	// WDTW is DTW with sigmoid phase-difference weighting (see Options.G).
	WDTW

	// WDDTW is WDTW over the Keogh derivative transform.
	WDDTW

	// ERP is edit distance with real penalty (see Options.GapValue).
	ERP

	// EDR is edit distance on real sequences (see Options.Epsilon).
	EDR

	// TWE is time warp edit distance (see Options.Nu, Options.Lambda).
	TWE

	// MSM is the move-split-merge distance (see Options.C).
	MSM

	// ShapeDTW is DTW over local subsequence descriptors (see Options.Reach).
	ShapeDTW

	// ADTW is amerced DTW with a constant warp penalty (see Options.WarpPenalty).
	ADTW
)

// metricNames holds the canonical string tags, indexed by Metric.
var metricNames = [...]string{
	DTW:      "dtw",
	DDTW:     "ddtw",
	WDTW:     "wdtw",
	WDDTW:    "wddtw",
	ERP:      "erp",
	EDR:      "edr",
	TWE:      "twe",
	MSM:      "msm",
	ShapeDTW: "shape_dtw",
	ADTW:     "adtw",
}

// String returns the canonical tag, e.g. "shape_dtw" for ShapeDTW.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "metric(" + strconv.Itoa(int(m)) + ")"
	}

	return metricNames[m]
}

// ParseMetric resolves a string tag to its Metric.
// Unknown tags return ErrUnknownMetric.
func ParseMetric(name string) (Metric, error) {
	for m, n := range metricNames {
		if n == name {
			return Metric(m), nil
		}
	}

	return 0, ErrUnknownMetric
}

// Options carries the per-measure parameters. Zero values are NOT
// meaningful for every field; start from DefaultOptions and override.
//
// Fields:
//   - G           — WDTW/WDDTW weight steepness of the sigmoid
//     w(d) = 1 / (1 + exp(−G·(d − mid))), mid = max(n,m)/2.
//   - GapValue    — ERP reference value g: gaps cost the squared distance
//     to the constant g-vector.
//   - Epsilon     — EDR matching threshold: points closer than Epsilon
//     (Euclidean) match for free, otherwise edit cost 1.
//   - Nu          — TWE stiffness (cost per unit of phase difference).
//   - Lambda      — TWE constant edit penalty for delete operations.
//   - C           — MSM cost of a split or merge move.
//   - WarpPenalty — ADTW constant amercement added to each warp step.
//   - Reach       — ShapeDTW descriptor half-window; each point is
//     described by its edge-padded neighbourhood of 2·Reach+1 points.
type Options struct {
	G           float64
	GapValue    float64
	Epsilon     float64
	Nu          float64
	Lambda      float64
	C           float64
	WarpPenalty float64
	Reach       int
}

// DefaultOptions returns the conventional parameterisation of every
// measure: G=0.05, GapValue=0, Epsilon=1, Nu=0.001, Lambda=1, C=1,
// WarpPenalty=1, Reach=4.
func DefaultOptions() Options {
	return Options{
		G:           0.05,
		GapValue:    0,
		Epsilon:     1,
		Nu:          0.001,
		Lambda:      1,
		C:           1,
		WarpPenalty: 1,
		Reach:       4,
	}
}

// TransformedLength returns the number of alignable timepoints a
// sequence of the given length contributes under metric m. Derivative
// measures (DDTW, WDDTW) shorten the series by two; every other measure
// aligns the raw timepoints. Use it to size bounding matrices.
func TransformedLength(m Metric, length int) int {
	if m == DDTW || m == WDDTW {
		return length - 2
	}

	return length
}
