// Package elastic: sentinel error set.
// All measures MUST return these sentinels and tests MUST check them
// via errors.Is. No measure panics on user input.
package elastic

import "errors"

var (
	// ErrEmptySequence indicates a sequence with no channels or no timepoints.
	ErrEmptySequence = errors.New("elastic: input sequences must be non-empty")

	// ErrChannelMismatch indicates the two sequences disagree on channel
	// count, or a sequence has channels of differing lengths.
	ErrChannelMismatch = errors.New("elastic: channel counts and channel lengths must agree")

	// ErrTooShort indicates a sequence is too short for the selected
	// measure (derivative measures need at least three timepoints).
	ErrTooShort = errors.New("elastic: sequence too short for this metric")

	// ErrUnknownMetric indicates a metric tag outside the supported set.
	ErrUnknownMetric = errors.New("elastic: unknown metric")

	// ErrBoundingShape indicates the bounding matrix does not match the
	// (transformed) sequence lengths.
	ErrBoundingShape = errors.New("elastic: bounding matrix shape does not match sequence lengths")

	// ErrBlockedPath indicates the bounding mask admits no alignment
	// path between the corners (e.g. a zero window with unequal lengths).
	ErrBlockedPath = errors.New("elastic: bounding mask admits no alignment path")

	// ErrBadOption indicates a negative measure parameter.
	ErrBadOption = errors.New("elastic: measure parameters must be non-negative")
)
