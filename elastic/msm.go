// Package elastic - move-split-merge distance.
//
// MSM edits one series into the other with three operations: move
// (substitute, costing the pointwise L1 distance), split and merge
// (each costing the constant Options.C, plus an off-band surcharge when
// the inserted point does not lie between its neighbours). All
// pointwise arithmetic is L1, true to the measure's absolute-difference
// formulation; multichannel series use the dependent generalisation
// (the between-ness test runs on whole channel vectors).
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// l1Dist is the L1 distance across channels between x[:,i] and y[:,j].
func l1Dist(x, y [][]float64, i, j int) float64 {
	var sum float64
	for c := range x {
		sum += math.Abs(x[c][i] - y[c][j])
	}

	return sum
}

// msmMoveCost prices a split/merge of point p[:,pi] relative to its
// neighbours q[:,qi] and r[:,ri]: the flat cost c when p lies inside
// the L1 ball spanned by q and r, otherwise c plus the distance to the
// nearer neighbour.
func msmMoveCost(p [][]float64, pi int, q [][]float64, qi int, r [][]float64, ri int, c float64) float64 {
	var (
		diameter = l1Dist(q, r, qi, ri)
		toMid    float64
	)
	for ch := range p {
		toMid += math.Abs((q[ch][qi]+r[ch][ri])/2 - p[ch][pi])
	}
	if toMid <= diameter/2 {
		return c
	}

	return c + math.Min(l1Dist(p, q, pi, qi), l1Dist(p, r, pi, ri))
}

// msmMatrix fills the masked (n × m) MSM cost matrix.
func msmMatrix(x, y [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	var (
		n, m = seqLen(x), seqLen(y)
		cm   = newCostMatrix(n, m)
		i, j int
	)
	if bm.At(0, 0) {
		cm[0][0] = l1Dist(x, y, 0, 0)
	}
	for i = 1; i < n; i++ {
		if bm.At(i, 0) {
			cm[i][0] = cm[i-1][0] + msmMoveCost(x, i, x, i-1, y, 0, o.C)
		}
	}
	for j = 1; j < m; j++ {
		if bm.At(0, j) {
			cm[0][j] = cm[0][j-1] + msmMoveCost(y, j, x, 0, y, j-1, o.C)
		}
	}
	for i = 1; i < n; i++ {
		for j = 1; j < m; j++ {
			if !bm.At(i, j) {
				continue
			}
			cm[i][j] = min3(
				cm[i-1][j-1]+l1Dist(x, y, i, j),
				cm[i-1][j]+msmMoveCost(x, i, x, i-1, y, j, o.C),
				cm[i][j-1]+msmMoveCost(y, j, x, i, y, j-1, o.C),
			)
		}
	}

	return cm
}

// msmCost computes the MSM distance; +Inf when the mask blocks every path.
func msmCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	cm := msmMatrix(x, y, bm, o)

	return cm[len(cm)-1][len(cm[0])-1]
}

// msmPath recovers the optimal move-split-merge alignment; nil when blocked.
func msmPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	var (
		cm   = msmMatrix(x, y, bm, o)
		i    = len(cm) - 1
		j    = len(cm[0]) - 1
		dist = cm[i][j]
	)
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	var (
		inf            = math.Inf(1)
		path           = make(Path, 0, i+j+1)
		diag, up, left float64
	)
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		diag, up, left = inf, inf, inf
		if i > 0 && j > 0 {
			diag = cm[i-1][j-1] + l1Dist(x, y, i, j)
		}
		if i > 0 {
			up = cm[i-1][j] + msmMoveCost(x, i, x, i-1, y, j, o.C)
		}
		if j > 0 {
			left = cm[i][j-1] + msmMoveCost(y, j, x, i, y, j-1, o.C)
		}
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i, J: j})
	}
	reversePath(path)

	return path, dist
}
