// Package barycenter - seed barycenter construction.
//
// Initialization is part of the public contract: DBA refines whatever it
// starts from, so the seed policy must be fixed and deterministic, not
// ad hoc. Every policy here is reproducible given Options.Seed.
package barycenter

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/warp/bounding"
	"github.com/katalvlaran/warp/elastic"
)

// buildSeed constructs the seed barycenter for a validated collection
// according to o.Policy. Called only when o.Init is nil.
func buildSeed(x [][][]float64, o Options) ([][]float64, error) {
	switch o.Policy {
	case InitMean:
		if !equalLengths(x) {
			return nil, ErrBadOption
		}

		return meanSeed(x), nil
	case InitMedoid:
		return medoidSeed(x, o)
	case InitRandom:
		return cloneSeq(x[rngFromSeed(o.Seed).Intn(len(x))]), nil
	default: // InitAuto
		if equalLengths(x) {
			return meanSeed(x), nil
		}

		return medoidSeed(x, o)
	}
}

// equalLengths reports whether every sequence has the same length.
func equalLengths(x [][][]float64) bool {
	n := len(x[0][0])
	for _, seq := range x {
		if len(seq[0]) != n {
			return false
		}
	}

	return true
}

// meanSeed returns the element-wise mean of an equal-length collection.
func meanSeed(x [][][]float64) [][]float64 {
	var (
		channels = len(x[0])
		length   = len(x[0][0])
		seed     = make([][]float64, channels)
	)
	for c := 0; c < channels; c++ {
		acc := make([]float64, length)
		for _, seq := range x {
			floats.Add(acc, seq[c])
		}
		floats.Scale(1/float64(len(x)), acc)
		seed[c] = acc
	}

	return seed
}

// medoidSeed returns a copy of the sequence minimising the total elastic
// distance to the collection under o.Metric; the lowest index wins ties.
//
// Complexity: O(N²) distance computations.
func medoidSeed(x [][][]float64, o Options) ([][]float64, error) {
	var (
		n     = len(x)
		bOpts = bounding.Options{Window: o.Window, ItakuraMaxSlope: o.ItakuraMaxSlope}
		rows  = make([][]float64, n)
	)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bm, err := bounding.New(
				elastic.TransformedLength(o.Metric, len(x[i][0])),
				elastic.TransformedLength(o.Metric, len(x[j][0])),
				bOpts,
			)
			if err != nil {
				return nil, err
			}
			d, err := elastic.Distance(o.Metric, x[i], x[j], bm, &o.Distance)
			if err != nil {
				return nil, err
			}
			rows[i][j] = d
			rows[j][i] = d
		}
	}

	var (
		best     = 0
		bestCost = floats.Sum(rows[0])
	)
	for i := 1; i < n; i++ {
		if cost := floats.Sum(rows[i]); cost < bestCost {
			best, bestCost = i, cost
		}
	}

	return cloneSeq(x[best]), nil
}
