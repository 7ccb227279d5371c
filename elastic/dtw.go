// Package elastic - classic dynamic time warping.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// dtwCost computes DTW with squared Euclidean pointwise cost:
//
//	cm[i][j] = ‖x[:,i] − y[:,j]‖² + min(cm[i-1][j-1], cm[i-1][j], cm[i][j-1])
//
// restricted to the bounding mask. Returns +Inf when the mask blocks
// every path.
func dtwCost(x, y [][]float64, bm bounding.Matrix, _ Options) float64 {
	cm := dtwMatrix(x, y, bm)

	return cm[len(cm)-1][len(cm[0])-1]
}

// dtwPath recovers the optimal warping path; nil when blocked.
func dtwPath(x, y [][]float64, bm bounding.Matrix, _ Options) (Path, float64) {
	cm := dtwMatrix(x, y, bm)
	dist := cm[len(cm)-1][len(cm[0])-1]
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	return backtrackWarp(cm, 0), dist
}

// dtwMatrix fills the masked DTW cost matrix.
func dtwMatrix(x, y [][]float64, bm bounding.Matrix) [][]float64 {
	return fillWarp(seqLen(x), seqLen(y), bm, func(i, j int) float64 {
		return sqDist(x, y, i, j)
	}, 0)
}
