// Package elastic - time warp edit distance.
//
// TWE (Marteau) combines warping and editing: a match pays the distance
// of both current and previous point pairs plus a stiffness charge
// Nu·2·|i−j| for phase difference; a delete on either side pays the
// step distance within that series plus Nu + Lambda. Both series are
// conceptually prefixed with a zero point.
package elastic

import (
	"math"

	"github.com/katalvlaran/warp/bounding"
)

// twePad returns the series with a leading all-zero timepoint, giving
// the recurrence a well-defined "previous point" at t=1.
func twePad(x [][]float64) [][]float64 {
	p := make([][]float64, len(x))
	for c := range x {
		p[c] = make([]float64, len(x[c])+1)
		copy(p[c][1:], x[c])
	}

	return p
}

// tweMatrix fills the padded (n+1 × m+1) TWE matrix over the
// zero-prefixed series px, py. Borders beyond (0,0) stay +Inf: every
// alignment starts at the artificial zero point.
func tweMatrix(px, py [][]float64, bm bounding.Matrix, o Options) [][]float64 {
	var (
		n, m  = seqLen(px) - 1, seqLen(py) - 1
		dp    = newCostMatrix(n+1, m+1)
		phase float64
		i, j  int
	)
	dp[0][0] = 0
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if !bm.At(i-1, j-1) {
				continue
			}
			phase = float64(i - j)
			if phase < 0 {
				phase = -phase
			}
			dp[i][j] = min3(
				dp[i-1][j-1]+euclDist(px, py, i, j)+euclDist(px, py, i-1, j-1)+o.Nu*2*phase,
				dp[i-1][j]+euclDist(px, px, i-1, i)+o.Nu+o.Lambda,
				dp[i][j-1]+euclDist(py, py, j-1, j)+o.Nu+o.Lambda,
			)
		}
	}

	return dp
}

// tweCost computes the TWE distance; +Inf when the mask blocks every path.
func tweCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	dp := tweMatrix(twePad(x), twePad(y), bm, o)

	return dp[len(dp)-1][len(dp[0])-1]
}

// twePath recovers the optimal edit-warp alignment; nil when blocked.
func twePath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	var (
		px, py = twePad(x), twePad(y)
		dp     = tweMatrix(px, py, bm, o)
		i      = len(dp) - 1
		j      = len(dp[0]) - 1
		dist   = dp[i][j]
	)
	if math.IsInf(dist, 1) {
		return nil, dist
	}

	var (
		inf            = math.Inf(1)
		path           = make(Path, 0, i+j+1)
		diag, up, left float64
		phase          float64
	)
	path = append(path, Coord{I: i - 1, J: j - 1})
	for i > 1 || j > 1 {
		diag, up, left = inf, inf, inf
		if i > 1 && j > 1 {
			phase = math.Abs(float64(i - j))
			diag = dp[i-1][j-1] + euclDist(px, py, i, j) + euclDist(px, py, i-1, j-1) + o.Nu*2*phase
		}
		if i > 1 {
			up = dp[i-1][j] + euclDist(px, px, i-1, i) + o.Nu + o.Lambda
		}
		if j > 1 {
			left = dp[i][j-1] + euclDist(py, py, j-1, j) + o.Nu + o.Lambda
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
