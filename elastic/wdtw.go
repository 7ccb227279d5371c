// Package elastic - weighted dynamic time warping.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// wdtwWeight builds the sigmoid phase-difference weight function
//
//	w(|i−j|) = 1 / (1 + exp(−g·(|i−j| − mid))),  mid = max(n,m)/2
//
// so far-off-diagonal matches cost progressively more. The weights for
// every possible phase difference are precomputed once per call.
func wdtwWeight(n, m int, g float64) []float64 {
	var (
		span = max(n, m)
		mid  = float64(span) / 2
		w    = make([]float64, span)
	)
	for d := range w {
		w[d] = 1 / (1 + math.Exp(-g*(float64(d)-mid)))
	}

	return w
}

// wdtwCost computes WDTW: the DTW recurrence with each cell cost scaled
// by the phase-difference weight.
func wdtwCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	cm := wdtwMatrix(x, y, bm, o)

	return cm[len(cm)-1][len(cm[0])-1]
}

// wdtwPath recovers the optimal weighted warping path; nil when blocked.
func wdtwPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	cm := wdtwMatrix(x, y, bm, o)
	dist := cm[len(cm)-1][len(cm[0])-1]
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	return backtrackWarp(cm, 0), dist
}

// wdtwMatrix fills the masked weighted cost matrix.
func wdtwMatrix(x, y [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	var (
		n, m = seqLen(x), seqLen(y)
		w    = wdtwWeight(n, m, o.G)
	)

	return fillWarp(n, m, bm, func(i, j int) float64 {
		d := i - j
		if d < 0 {
			d = -d
		}

		return w[d] * sqDist(x, y, i, j)
	}, 0)
}
