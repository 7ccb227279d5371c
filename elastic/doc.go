// Package elastic computes elastic distances between multichannel time
// series, with optional alignment paths and pluggable measures.
//
// 🚀 What is an elastic distance?
//
//	A dissimilarity that tolerates local time shifts by warping the time
//	axis: instead of comparing x[i] with y[i], a constrained
//	dynamic-programming search finds the cheapest monotonic alignment.
//	Elastic measures power time-series classification, clustering and
//	averaging.
//
// ✨ Supported measures (select via Metric):
//   - DTW      — classic dynamic time warping (squared pointwise cost)
//   - DDTW     — DTW over the Keogh derivative transform
//   - WDTW     — DTW with sigmoid phase-difference weighting
//   - WDDTW    — weighted DTW over derivatives
//   - ERP      — edit distance with real penalty (gap reference value)
//   - EDR      — edit distance on real sequences (match threshold)
//   - TWE      — time warp edit distance (stiffness + edit penalty)
//   - MSM      — move-split-merge distance
//   - ShapeDTW — DTW over local subsequence descriptors
//   - ADTW     — amerced DTW (constant warping penalty)
//
// Every measure consumes a precomputed bounding.Matrix restricting the
// search region, and every measure can return the optimal alignment
// path in addition to the scalar cost.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/warp/bounding"
//	  "github.com/katalvlaran/warp/elastic"
//	)
//
//	x := [][]float64{{0, 1, 2, 3}}      // one channel, four timepoints
//	y := [][]float64{{0, 1, 1, 2, 3}}
//
//	bm, _ := bounding.Full(4, 5)
//	opts := elastic.DefaultOptions()
//
//	dist, err := elastic.Distance(elastic.DTW, x, y, bm, &opts)
//	path, dist, err := elastic.AlignmentPath(elastic.DTW, x, y, bm, &opts)
//
// Conventions:
//
//   - Sequences are (channels × timepoints); lengths may differ between
//     x and y, channel counts may not.
//   - A mask that admits no path yields +Inf from Distance (no error);
//     AlignmentPath reports ErrBlockedPath instead.
//   - DDTW/WDDTW align the derivative series, which is two points shorter;
//     size the bounding matrix with TransformedLength.
//
// Performance:
//
//   - Time:   O(n·m) cells, O(channels) work per cell
//   - Memory: O(n·m) (full matrix; required for path recovery)
package elastic
