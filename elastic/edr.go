// Package elastic - edit distance on real sequences.
//
// EDR counts edit operations: two points match for free when their
// Euclidean distance is at most Options.Epsilon, otherwise a
// substitution, insertion or deletion costs 1. The final count is
// normalised by max(n, m), so the distance lies in [0, 1] and is
// comparable across lengths.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// edrMatch is the substitution cost for cell (i, j): 0 for points
// within Epsilon, 1 otherwise.
func edrMatch(x, y [][]float64, i, j int, eps float64) float64 {
	if euclDist(x, y, i, j) <= eps {
		return 0
	}

	return 1
}

// edrMatrix fills the padded (n+1 × m+1) edit matrix with classic
// borders dp[i][0]=i, dp[0][j]=j, interior masked by bm.
func edrMatrix(x, y [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	var (
		n, m = seqLen(x), seqLen(y)
		dp   = newCostMatrix(n+1, m+1)
		i, j int
	)
	dp[0][0] = 0
	for i = 1; i <= n; i++ {
		dp[i][0] = float64(i)
	}
	for j = 1; j <= m; j++ {
		dp[0][j] = float64(j)
	}
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if !bm.At(i-1, j-1) {
				continue
			}
			dp[i][j] = min3(
				dp[i-1][j-1]+edrMatch(x, y, i-1, j-1, o.Epsilon),
				dp[i-1][j]+1,
				dp[i][j-1]+1,
			)
		}
	}

	return dp
}

// edrCost computes the normalised EDR distance; +Inf when blocked.
func edrCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	dp := edrMatrix(x, y, bm, o)

	return dp[len(dp)-1][len(dp[0])-1] / float64(max(seqLen(x), seqLen(y)))
}

// edrPath recovers the optimal edit alignment; nil when blocked.
func edrPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	dp := edrMatrix(x, y, bm, o)

	var (
		i    = len(dp) - 1
		j    = len(dp[0]) - 1
		dist = dp[i][j] / float64(max(seqLen(x), seqLen(y)))
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
			diag = dp[i-1][j-1] + edrMatch(x, y, i-1, j-1, o.Epsilon)
		}
		if i > 1 {
			up = dp[i-1][j] + 1
		}
		if j > 1 {
			left = dp[i][j-1] + 1
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
