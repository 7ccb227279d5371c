// Package elastic - amerced dynamic time warping.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// adtwCost computes ADTW: the DTW recurrence where every non-diagonal
// (warping) step is amerced with the constant Options.WarpPenalty.
// Larger penalties pull the alignment towards the lock-step diagonal.
func adtwCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	cm := adtwMatrix(x, y, bm, o)

	return cm[len(cm)-1][len(cm[0])-1]
}

// adtwPath recovers the optimal amerced path; nil when blocked.
func adtwPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	cm := adtwMatrix(x, y, bm, o)
	dist := cm[len(cm)-1][len(cm[0])-1]
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	return backtrackWarp(cm, o.WarpPenalty), dist
}

// adtwMatrix fills the masked amerced cost matrix.
func adtwMatrix(x, y [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	return fillWarp(seqLen(x), seqLen(y), bm, func(i, j int) float64 {
		return sqDist(x, y, i, j)
	}, o.WarpPenalty)
}
