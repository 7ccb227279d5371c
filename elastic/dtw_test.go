package elastic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/bounding"
	"github.com/katalvlaran/warp/elastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTW_HandComputed pins small hand-computed distances.
func TestDTW_HandComputed(t *testing.T) {
	// Constant offset: every cell costs 1, lock-step path has two cells.
	d, err := elastic.Distance(elastic.DTW,
		[][]float64{{0, 0}}, [][]float64{{1, 1}}, mustFull(t, 2, 2), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	// One point differs by 1: squared cost 1 on the last diagonal cell.
	d, err = elastic.Distance(elastic.DTW,
		[][]float64{{0, 1, 2}}, [][]float64{{0, 1, 3}}, mustFull(t, 3, 3), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)

	// Perfect subsequence match: the repeated 2 is absorbed for free.
	d, err = elastic.Distance(elastic.DTW,
		[][]float64{{1, 2, 3}}, [][]float64{{1, 2, 2, 3}}, mustFull(t, 3, 4), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12)
}

// TestDTW_Path verifies the optimal path of a perfect subsequence match.
func TestDTW_Path(t *testing.T) {
	path, dist, err := elastic.AlignmentPath(elastic.DTW,
		[][]float64{{1, 2, 3}}, [][]float64{{1, 2, 2, 3}}, mustFull(t, 3, 4), nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, dist, 1e-12)
	assert.Equal(t, elastic.Path{{I: 0, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}, path)
}

// TestDTW_BlockedMask verifies a zero window with unequal lengths yields
// +Inf from Distance and ErrBlockedPath from AlignmentPath.
func TestDTW_BlockedMask(t *testing.T) {
	x := [][]float64{{1, 2, 3}}
	y := [][]float64{{1, 2, 3, 4}}
	bm, err := bounding.SakoeChiba(3, 4, 0)
	require.NoError(t, err)

	d, err := elastic.Distance(elastic.DTW, x, y, bm, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "blocked mask must yield +Inf")

	_, _, err = elastic.AlignmentPath(elastic.DTW, x, y, bm, nil)
	assert.ErrorIs(t, err, elastic.ErrBlockedPath)
}

// TestDTW_WindowMatchesFull verifies a generous band reproduces the
// unconstrained distance.
func TestDTW_WindowMatchesFull(t *testing.T) {
	x := [][]float64{{0, 1, 2, 3, 2, 1, 0, 1, 2, 3}}
	y := [][]float64{{0, 1, 1, 2, 3, 2, 1, 0, 1, 2}}

	dFull, err := elastic.Distance(elastic.DTW, x, y, mustFull(t, 10, 10), nil)
	require.NoError(t, err)

	band, err := bounding.SakoeChiba(10, 10, 0.8)
	require.NoError(t, err)
	dBand, err := elastic.Distance(elastic.DTW, x, y, band, nil)
	require.NoError(t, err)

	assert.InDelta(t, dFull, dBand, 1e-12)
}

// TestDTW_Multichannel verifies the dependent (joint-channel) pointwise
// cost: squared Euclidean across channels.
func TestDTW_Multichannel(t *testing.T) {
	x := [][]float64{{0, 0}, {0, 0}}
	y := [][]float64{{3, 3}, {4, 4}} // every cell costs 3²+4² = 25

	d, err := elastic.Distance(elastic.DTW, x, y, mustFull(t, 2, 2), nil)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, d, 1e-12, "two lock-step cells at 25 each")
}

// TestADTW_PenalisesWarp verifies one off-diagonal step costs exactly
// the warp penalty on an otherwise perfect match.
func TestADTW_PenalisesWarp(t *testing.T) {
	x := [][]float64{{1, 2, 3}}
	y := [][]float64{{1, 2, 2, 3}}
	opts := elastic.DefaultOptions()
	opts.WarpPenalty = 1

	d, err := elastic.Distance(elastic.ADTW, x, y, mustFull(t, 3, 4), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12, "a single amerced step at penalty 1")

	// Unequal lengths force at least one warp step, so the distance
	// scales with the penalty.
	opts.WarpPenalty = 10
	d, err = elastic.Distance(elastic.ADTW, x, y, mustFull(t, 3, 4), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, d, 1e-12, "the single unavoidable warp step now costs 10")
}

// TestWDTW_WeightsReduceOffDiagonal verifies WDTW is bounded above by
// DTW (weights lie in (0,1)) and is zero on identical inputs.
func TestWDTW_WeightsReduceOffDiagonal(t *testing.T) {
	x := [][]float64{{0, 1, 2, 3, 4}}
	y := [][]float64{{0, 2, 2, 3, 5}}

	dtw, err := elastic.Distance(elastic.DTW, x, y, mustFull(t, 5, 5), nil)
	require.NoError(t, err)
	wdtw, err := elastic.Distance(elastic.WDTW, x, y, mustFull(t, 5, 5), nil)
	require.NoError(t, err)

	assert.Less(t, wdtw, dtw, "sigmoid weights in (0,1) shrink every cell cost")
}

// TestDDTW_ConstantSlopes verifies DDTW compares slopes, not values:
// two linear ramps differing in slope by 1 cost 1 per derivative cell.
func TestDDTW_ConstantSlopes(t *testing.T) {
	x := [][]float64{{0, 1, 2, 3, 4}} // derivative 1,1,1
	y := [][]float64{{0, 2, 4, 6, 8}} // derivative 2,2,2

	d, err := elastic.Distance(elastic.DDTW, x, y, mustFull(t, 3, 3), nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-12)

	// Same shape, different offset: derivatives agree, distance zero.
	z := [][]float64{{10, 11, 12, 13, 14}}
	d, err = elastic.Distance(elastic.DDTW, x, z, mustFull(t, 3, 3), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12)
}

// TestShapeDTW_OffsetSensitivity verifies the descriptor cost grows with
// the neighbourhood width on a constant offset.
func TestShapeDTW_OffsetSensitivity(t *testing.T) {
	x := [][]float64{{0, 0, 0, 0}}
	y := [][]float64{{1, 1, 1, 1}}
	opts := elastic.DefaultOptions()
	opts.Reach = 1 // descriptors of width 3, each point off by 1

	d, err := elastic.Distance(elastic.ShapeDTW, x, y, mustFull(t, 4, 4), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d, 1e-12, "4 diagonal cells × width-3 descriptor × cost 1")
}

// TestAlignmentPath_Endpoints verifies every measure's path runs corner
// to corner and is monotonic.
func TestAlignmentPath_Endpoints(t *testing.T) {
	x := [][]float64{{0, 1, 2, 3, 2, 1, 0, 1, 2, 3}}
	y := [][]float64{{1, 0, 1, 2, 3, 2, 1, 0, 1, 2}}
	metrics := []elastic.Metric{
		elastic.DTW, elastic.DDTW, elastic.WDTW, elastic.WDDTW, elastic.ERP,
		elastic.EDR, elastic.TWE, elastic.MSM, elastic.ShapeDTW, elastic.ADTW,
	}
	for _, m := range metrics {
		n := elastic.TransformedLength(m, 10)
		path, _, err := elastic.AlignmentPath(m, x, y, mustFull(t, n, n), nil)
		require.NoError(t, err, "metric %s", m)
		require.NotEmpty(t, path, "metric %s", m)

		assert.Equal(t, elastic.Coord{I: 0, J: 0}, path[0], "metric %s start", m)
		assert.Equal(t, elastic.Coord{I: n - 1, J: n - 1}, path[len(path)-1], "metric %s end", m)
		for k := 1; k < len(path); k++ {
			di := path[k].I - path[k-1].I
			dj := path[k].J - path[k-1].J
			assert.True(t, di >= 0 && dj >= 0 && di <= 1 && dj <= 1 && di+dj >= 1,
				"metric %s: step %d must be monotonic and cell-connected", m, k)
		}
	}
}
