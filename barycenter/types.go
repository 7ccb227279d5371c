// Package barycenter - options, initialization policies and sentinel errors.
package barycenter

import (
	"errors"

	"github.com/katalvlaran/warp/bounding"
	"github.com/katalvlaran/warp/elastic"
)

var (
	// ErrEmptyCollection indicates an empty input collection.
	ErrEmptyCollection = errors.New("barycenter: collection must contain at least one sequence")

	// ErrEmptySequence indicates a sequence with no channels or no timepoints.
	ErrEmptySequence = errors.New("barycenter: sequences must have channels and timepoints")

	// ErrChannelMismatch indicates sequences (or the seed barycenter)
	// disagree on channel count, or a sequence has ragged channels.
	ErrChannelMismatch = errors.New("barycenter: all sequences must share one channel count")

	// ErrBadOption indicates an invalid option value (negative MaxIters,
	// Tol or Workers, or InitMean over unequal-length sequences).
	ErrBadOption = errors.New("barycenter: invalid option value")
)

// InitPolicy selects how the seed barycenter is built when Options.Init
// is nil. All policies are deterministic given Options.Seed.
type InitPolicy int

const (
	// InitAuto uses the element-wise mean when all sequences share one
	// length and falls back to the medoid otherwise. Default.
	InitAuto InitPolicy = iota

	// InitMean seeds with the element-wise mean; requires equal lengths.
	InitMean

	// InitMedoid seeds with the sequence minimising the total elastic
	// distance to the collection (lowest index wins ties).
	InitMedoid

	// InitRandom seeds with a sequence drawn by the seeded generator.
	InitRandom
)

// Options configures Average.
//
// Fields:
//   - Metric          — elastic measure used for every alignment.
//   - Window          — Sakoe–Chiba fraction in [0,1] forwarded to every
//     bounding matrix; negative (bounding.Unconstrained) means no band.
//   - ItakuraMaxSlope — Itakura slope fraction; negative means unset.
//     Mutually exclusive with Window.
//   - Independent     — true: each channel is aligned and averaged on its
//     own; false: one joint alignment drives all channels (dependent).
//   - MaxIters        — iteration cap; 0 returns the seed unchanged.
//   - Tol             — minimum relative cost improvement to keep going.
//   - Init            — optional seed barycenter (channels × length);
//     copied, never mutated. Nil selects InitPolicy.
//   - Policy          — seed construction policy when Init is nil.
//   - Seed            — deterministic source for InitRandom; 0 maps to a
//     fixed default seed, never to a time-based one.
//   - Workers         — alignment goroutines per iteration; 0 means
//     GOMAXPROCS.
//   - Distance        — per-measure parameters (see elastic.Options).
//   - OnIteration     — optional hook observing (iteration, total cost)
//     after each alignment pass; useful for convergence monitoring.
type Options struct {
	Metric          elastic.Metric
	Window          float64
	ItakuraMaxSlope float64
	Independent     bool
	MaxIters        int
	Tol             float64
	Init            [][]float64
	Policy          InitPolicy
	Seed            int64
	Workers         int
	Distance        elastic.Options
	OnIteration     func(iter int, cost float64)
}

// DefaultOptions returns the conventional DBA configuration: DTW,
// unconstrained, independent channels, 30 iterations, Tol 1e-5.
func DefaultOptions() Options {
	return Options{
		Metric:          elastic.DTW,
		Window:          bounding.Unconstrained,
		ItakuraMaxSlope: bounding.Unconstrained,
		Independent:     true,
		MaxIters:        30,
		Tol:             1e-5,
		Policy:          InitAuto,
		Distance:        elastic.DefaultOptions(),
	}
}
