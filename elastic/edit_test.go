package elastic_test

import (
	"testing"

	"github.com/katalvlaran/warp/elastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestERP_HandComputed pins small hand-computed ERP distances (g = 0).
func TestERP_HandComputed(t *testing.T) {
	// Identical inputs: all diagonal matches, zero cost.
	d, err := elastic.Distance(elastic.ERP,
		[][]float64{{1, 2, 3}}, [][]float64{{1, 2, 3}}, mustFull(t, 3, 3), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12)

	// x = [1,2], y = [1]: cheapest edit drops x[0] as a gap (cost 1²)
	// and matches 2 against 1 (cost 1²).
	d, err = elastic.Distance(elastic.ERP,
		[][]float64{{1, 2}}, [][]float64{{1}}, mustFull(t, 2, 1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)
}

// TestERP_GapValueShiftsCost verifies the gap reference value changes
// what a deletion costs.
func TestERP_GapValueShiftsCost(t *testing.T) {
	x := [][]float64{{5, 5, 5}}
	y := [][]float64{{5, 5}}

	opts := elastic.DefaultOptions()
	opts.GapValue = 5 // gaps of value-5 points become free

	d, err := elastic.Distance(elastic.ERP, x, y, mustFull(t, 3, 2), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12, "deleting a point equal to g is free")

	opts.GapValue = 0
	d, err = elastic.Distance(elastic.ERP, x, y, mustFull(t, 3, 2), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, d, 1e-12, "deleting one value-5 point costs 5²")
}

// TestEDR_HandComputed pins the normalised edit count.
func TestEDR_HandComputed(t *testing.T) {
	// One of two points farther than epsilon: 1 edit / max length 2.
	d, err := elastic.Distance(elastic.EDR,
		[][]float64{{0, 5}}, [][]float64{{0, 0}}, mustFull(t, 2, 2), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)

	// Everything within epsilon: zero.
	d, err = elastic.Distance(elastic.EDR,
		[][]float64{{0, 0.5, 1}}, [][]float64{{0.4, 0.9, 1.4}}, mustFull(t, 3, 3), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12)
}

// TestEDR_RangeBound verifies the normalised distance never exceeds 1.
func TestEDR_RangeBound(t *testing.T) {
	d, err := elastic.Distance(elastic.EDR,
		[][]float64{{100, 200, 300, 400}}, [][]float64{{-5, -6}}, mustFull(t, 4, 2), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 0.0)
	assert.LessOrEqual(t, d, 1.0)
}

// TestTWE_StiffnessPenalisesPhase verifies Nu charges phase drift: a
// shifted copy costs more as stiffness grows.
func TestTWE_StiffnessPenalisesPhase(t *testing.T) {
	x := [][]float64{{0, 1, 2, 3, 4, 5}}
	y := [][]float64{{0, 0, 1, 2, 3, 4}}

	soft := elastic.DefaultOptions()
	soft.Nu = 0.001
	dSoft, err := elastic.Distance(elastic.TWE, x, y, mustFull(t, 6, 6), &soft)
	require.NoError(t, err)

	stiff := elastic.DefaultOptions()
	stiff.Nu = 1
	dStiff, err := elastic.Distance(elastic.TWE, x, y, mustFull(t, 6, 6), &stiff)
	require.NoError(t, err)

	assert.Greater(t, dStiff, dSoft, "higher stiffness must cost more on phase-shifted inputs")
}

// TestMSM_HandComputed pins small hand-computed MSM values (C = 1).
func TestMSM_HandComputed(t *testing.T) {
	// Single points: plain L1 move cost.
	d, err := elastic.Distance(elastic.MSM,
		[][]float64{{1}}, [][]float64{{3}}, mustFull(t, 1, 1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-12)

	// Splitting one repeated point: x = [1,1] vs y = [1] costs one merge.
	d, err = elastic.Distance(elastic.MSM,
		[][]float64{{1, 1}}, [][]float64{{1}}, mustFull(t, 2, 1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12, "one merge at C=1")
}

// TestMSM_CostScalesWithC verifies the split/merge constant scales the
// structural part of the distance.
func TestMSM_CostScalesWithC(t *testing.T) {
	x := [][]float64{{1, 1, 1}}
	y := [][]float64{{1}}

	opts := elastic.DefaultOptions()
	opts.C = 1
	d1, err := elastic.Distance(elastic.MSM, x, y, mustFull(t, 3, 1), &opts)
	require.NoError(t, err)

	opts.C = 3
	d3, err := elastic.Distance(elastic.MSM, x, y, mustFull(t, 3, 1), &opts)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, d1, 1e-12, "two merges at C=1")
	assert.InDelta(t, 6.0, d3, 1e-12, "two merges at C=3")
}
