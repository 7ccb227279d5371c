// Package elastic - derivative measures (DDTW, WDDTW).
//
// Both align the Keogh derivative transform of the inputs instead of
// the raw values, making the comparison sensitive to shape (slope)
// rather than amplitude. The transform drops the first and last
// timepoint, so bounding matrices must be sized with TransformedLength.
package elastic

import "github.com/katalvlaran/warp/bounding"

// keoghDerivative returns the derivative estimate of one channel:
//
//	d[i] = ((q[i] − q[i−1]) + (q[i+1] − q[i−1])/2) / 2,  i = 1..n−2
//
// a slope estimate robust to single-point noise. Output length is n−2.
func keoghDerivative(q []float64) []float64 {
	d := make([]float64, len(q)-2)
	for i := 1; i < len(q)-1; i++ {
		d[i-1] = ((q[i] - q[i-1]) + (q[i+1]-q[i-1])/2) / 2
	}

	return d
}

// derive applies keoghDerivative channel-wise. Callers have already
// validated length ≥ 3.
func derive(x [][]float64) [][]float64 {
	d := make([][]float64, len(x))
	for c := range x {
		d[c] = keoghDerivative(x[c])
	}

	return d
}

// ddtwCost computes DTW over the derivative transform.
func ddtwCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	return dtwCost(derive(x), derive(y), bm, o)
}

// ddtwPath recovers the optimal derivative-space path; nil when blocked.
// Path indices refer to the derivative series (0..n−3).
func ddtwPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	return dtwPath(derive(x), derive(y), bm, o)
}

// wddtwCost computes WDTW over the derivative transform.
func wddtwCost(x, y [][]float64, bm bounding.Matrix, o Options) float64 {
	return wdtwCost(derive(x), derive(y), bm, o)
}

// wddtwPath recovers the optimal weighted derivative-space path.
func wddtwPath(x, y [][]float64, bm bounding.Matrix, o Options) (Path, float64) {
	return wdtwPath(derive(x), derive(y), bm, o)
}
