// Package elastic - edit distance with real penalty.
//
// ERP aligns two series with gap operations: skipping a point costs its
// squared distance to a constant reference value g (Options.GapValue),
// matching two points costs their squared distance. Unlike DTW, gaps
// make ERP a metric for a fixed g.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// erpGapCosts precomputes, per timepoint, the squared distance between
// x[:,t] and the constant g-vector.
func erpGapCosts(x [][]float64, g float64) []float64 {
	var (
		costs = make([]float64, seqLen(x))
		d     float64
	)
	for t := range costs {
		for c := range x {
			d = x[c][t] - g
			costs[t] += d * d
		}
	}

	return costs
}

// erpMatrix fills the padded (n+1 × m+1) ERP matrix. Row 0 and column 0
// are the all-gap prefixes; interior cells are masked by bm (shifted by
// one because of the padding).
func erpMatrix(x, y [][]float64, bm bounding.Matrix, o Options) ([][]float64, []float64, []float64) {
	var (
		n, m = seqLen(x), seqLen(y)
		gx   = erpGapCosts(x, o.GapValue)
		gy   = erpGapCosts(y, o.GapValue)
		dp   = newCostMatrix(n+1, m+1)
		i, j int
	)
	dp[0][0] = 0
	for i = 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + gx[i-1]
	}
	for j = 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + gy[j-1]
	}
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if !bm.At(i-1, j-1) {
				continue
			}
			dp[i][j] = min3(
				dp[i-1][j-1]+sqDist(x, y, i-1, j-1),
				dp[i-1][j]+gx[i-1],
				dp[i][j-1]+gy[j-1],
			)
		}
	}

	return dp, gx, gy
}

// erpCost computes the ERP distance; +Inf when the mask blocks every path.
func erpCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	dp, _, _ := erpMatrix(x, y, bm, o)

	return dp[len(dp)-1][len(dp[0])-1]
}

// erpPath recovers the optimal alignment. Gap moves keep the skipped
// side's index, matching the warp-path convention used package-wide.
func erpPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	dp, gx, gy := erpMatrix(x, y, bm, o)

	var (
		i    = len(dp) - 1
		j    = len(dp[0]) - 1
		dist = dp[i][j]
	)
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	var (
		inf            = math.Inf(1)
		path           = make(Path, 0, i+j+1)
		diag, up, left float64
	)
	path = append(path, Coord{I: i - 1, J: j - 1})
	for i > 1 || j > 1 {
		diag, up, left = inf, inf, inf
		if i > 1 && j > 1 {
			diag = dp[i-1][j-1] + sqDist(x, y, i-1, j-1)
		}
		if i > 1 {
			up = dp[i-1][j] + gx[i-1]
		}
		if j > 1 {
			left = dp[i][j-1] + gy[j-1]
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
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	reversePath(path)

	return path, dist
}
