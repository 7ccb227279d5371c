// Package elastic - shared dynamic-programming machinery.
//
// Every DTW-family measure (DTW, WDTW, ADTW, ShapeDTW and the derivative
// variants) is a masked accumulation
//
//	cm[i][j] = cell(i,j) + min(cm[i-1][j-1], cm[i-1][j]+p, cm[i][j-1]+p)
//
// differing only in the cell cost and the move penalty p. fillWarp and
// backtrackWarp implement that recurrence once; edit-style measures
// (ERP, EDR, TWE, MSM) keep their own recurrences in their own files.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// costFn yields the local cost of aligning timepoint i of the first
// sequence with timepoint j of the second.
type costFn func(i, j int) float64

// seqLen returns the number of timepoints of a (channels × timepoints)
// sequence, 0 for a channel-less one.
func seqLen(x [][]float64) int {
	if len(x) == 0 {
		return 0
	}

	return len(x[0])
}

// sqDist is the squared Euclidean distance across channels between
// x[:,i] and y[:,j].
func sqDist(x, y [][]float64, i, j int) float64 {
	var (
		sum float64
		d   float64
	)
	for c := range x {
		d = x[c][i] - y[c][j]
		sum += d * d
	}

	return sum
}

// euclDist is the Euclidean distance across channels between x[:,i]
// and y[:,j].
func euclDist(x, y [][]float64, i, j int) float64 {
	return math.Sqrt(sqDist(x, y, i, j))
}

// newCostMatrix allocates an (n × m) matrix filled with +Inf; masked
// cells simply keep that value.
func newCostMatrix(n, m int) [][]float64 {
	var (
		inf = math.Inf(1)
		cm  = make([][]float64, n)
	)
	for i := range cm {
		cm[i] = make([]float64, m)
		for j := range cm[i] {
			cm[i][j] = inf
		}
	}

	return cm
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}

// fillWarp computes the masked DTW-family cost matrix of shape (n × m).
// Cells outside the bounding mask stay +Inf; accumulation through +Inf
// propagates naturally, so no explicit reachability checks are needed.
//
// Complexity: O(n·m) invocations of cell.
func fillWarp(n, m int, bm bounding.Matrix, cell costFn, movePenalty float64) [][]float64 {
	cm := newCostMatrix(n, m)
	if bm.At(0, 0) {
		cm[0][0] = cell(0, 0)
	}
	var i, j int
	for i = 1; i < n; i++ {
		if bm.At(i, 0) {
			cm[i][0] = cm[i-1][0] + movePenalty + cell(i, 0)
		}
	}
	for j = 1; j < m; j++ {
		if bm.At(0, j) {
			cm[0][j] = cm[0][j-1] + movePenalty + cell(0, j)
		}
	}
	for i = 1; i < n; i++ {
		for j = 1; j < m; j++ {
			if !bm.At(i, j) {
				continue
			}
			cm[i][j] = cell(i, j) + min3(cm[i-1][j-1], cm[i-1][j]+movePenalty, cm[i][j-1]+movePenalty)
		}
	}

	return cm
}

// backtrackWarp recovers the optimal alignment path from a filled
// DTW-family matrix by walking predecessors from the terminal cell,
// preferring the diagonal on ties. The caller has already checked the
// terminal cell is finite.
//
// Complexity: O(n+m) path length, one allocation for the path.
func backtrackWarp(cm [][]float64, movePenalty float64) Path {
	var (
		i    = len(cm) - 1
		j    = len(cm[0]) - 1
		path = make(Path, 0, i+j+1)
	)
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			diag := cm[i-1][j-1]
			up := cm[i-1][j] + movePenalty
			left := cm[i][j-1] + movePenalty
			switch {
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}
	reversePath(path)

	return path
}

// reversePath reverses p in place.
func reversePath(p Path) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
