// Package elastic - shape dynamic time warping.
//
// ShapeDTW describes each timepoint by its local neighbourhood (the raw
// subsequence of 2·Reach+1 points, edge-padded at the boundaries) and
// runs the DTW recurrence over descriptor distances. Two points then
// match only if their surrounding shapes agree, not just their values.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// padEdges returns one channel extended by reach copies of its first
// and last value on either side.
func padEdges(q []float64, reach int) []float64 {
	p := make([]float64, len(q)+2*reach)
	for i := 0; i < reach; i++ {
		p[i] = q[0]
		p[len(p)-1-i] = q[len(q)-1]
	}
	copy(p[reach:], q)

	return p
}

// shapeDTWCost computes DTW over local subsequence descriptors.
func shapeDTWCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	cm := shapeDTWMatrix(x, y, bm, o)

	return cm[len(cm)-1][len(cm[0])-1]
}

// shapeDTWPath recovers the optimal descriptor-space path; indices refer
// to the original timepoints. Nil when blocked.
func shapeDTWPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	cm := shapeDTWMatrix(x, y, bm, o)
	dist := cm[len(cm)-1][len(cm[0])-1]
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	return backtrackWarp(cm, 0), dist
}

// shapeDTWMatrix fills the masked descriptor cost matrix. The cell cost
// is the squared Euclidean distance between the two descriptors, summed
// across channels; padded channel i spans descriptor window [i, i+2r].
func shapeDTWMatrix(x, y [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	var (
		n, m  = seqLen(x), seqLen(y)
		reach = o.Reach
		width = 2*reach + 1
		px    = make([][]float64, len(x))
		py    = make([][]float64, len(y))
	)
	for c := range x {
		px[c] = padEdges(x[c], reach)
		py[c] = padEdges(y[c], reach)
	}

	return fillWarp(n, m, bm, func(i, j int) float64 {
		var sum, d float64
		for c := range px {
			for k := 0; k < width; k++ {
				d = px[c][i+k] - py[c][j+k]
				sum += d * d
			}
		}

		return sum
	}, 0)
}
