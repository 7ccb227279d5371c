// Package bounding - mask constructors.
//
// Design principles:
//   - Deterministic, side-effect free functions; no logging, no panics.
//   - Strict sentinels: only errors from types.go.
//   - O(lenA·lenB) worst-case; a single allocation per mask.
package bounding

import "math"

// slopeTol absorbs floating-point drift when rounding parallelogram
// bounds to integer row indices.
const slopeTol = 1e-12

// New builds the mask selected by opts for a (lenA × lenB) alignment.
//
// Contract:
//   - lenA, lenB ≥ 1, else ErrBadLength.
//   - opts.Window and opts.ItakuraMaxSlope, when set (≥ 0), must lie in
//     [0, 1]; setting both is ErrConflictingConstraints.
//   - Neither set ⇒ fully true mask.
//
// Complexity: O(lenA·lenB) time and memory.
func New(lenA, lenB int, opts Options) (Matrix, error) {
	if lenA <= 0 || lenB <= 0 {
		return Matrix{}, ErrBadLength
	}

	windowSet := opts.Window >= 0
	slopeSet := opts.ItakuraMaxSlope >= 0
	if windowSet && slopeSet {
		return Matrix{}, ErrConflictingConstraints
	}
	if windowSet && opts.Window > 1 {
		return Matrix{}, ErrWindowOutOfRange
	}
	if slopeSet && opts.ItakuraMaxSlope > 1 {
		return Matrix{}, ErrSlopeOutOfRange
	}

	switch {
	case windowSet:
		return sakoeChiba(lenA, lenB, opts.Window), nil
	case slopeSet:
		return itakura(lenA, lenB, opts.ItakuraMaxSlope), nil
	default:
		return full(lenA, lenB), nil
	}
}

// Full returns a mask with every cell reachable.
//
// Errors: ErrBadLength for non-positive lengths.
func Full(lenA, lenB int) (Matrix, error) {
	if lenA <= 0 || lenB <= 0 {
		return Matrix{}, ErrBadLength
	}

	return full(lenA, lenB), nil
}

// SakoeChiba returns a band mask of fractional radius window in [0, 1].
//
// Errors: ErrBadLength, ErrWindowOutOfRange.
func SakoeChiba(lenA, lenB int, window float64) (Matrix, error) {
	if lenA <= 0 || lenB <= 0 {
		return Matrix{}, ErrBadLength
	}
	if window < 0 || window > 1 {
		return Matrix{}, ErrWindowOutOfRange
	}

	return sakoeChiba(lenA, lenB, window), nil
}

// Itakura returns a parallelogram mask for maxSlope in [0, 1].
//
// Errors: ErrBadLength, ErrSlopeOutOfRange.
func Itakura(lenA, lenB int, maxSlope float64) (Matrix, error) {
	if lenA <= 0 || lenB <= 0 {
		return Matrix{}, ErrBadLength
	}
	if maxSlope < 0 || maxSlope > 1 {
		return Matrix{}, ErrSlopeOutOfRange
	}

	return itakura(lenA, lenB, maxSlope), nil
}

// full marks every cell reachable.
func full(lenA, lenB int) Matrix {
	m := newMatrix(lenA, lenB)
	for i := range m.cells {
		m.cells[i] = true
	}

	return m
}

// sakoeChiba marks, for each row i, the columns within a symmetric band
// of radius round(window·max(lenA,lenB)) around the projected diagonal
// position i·lenB/lenA, clamped to valid columns.
//
// For square inputs the band reduces to |i−j| ≤ radius; e.g. a 10×10
// mask with window=0.2 has radius 2 and exactly 44 reachable cells.
func sakoeChiba(lenA, lenB int, window float64) Matrix {
	m := newMatrix(lenA, lenB)

	var (
		radius = math.Round(window * float64(max(lenA, lenB)))
		center float64
		lo, hi int
	)
	for i := 0; i < lenA; i++ {
		center = float64(i) * float64(lenB) / float64(lenA)
		lo = int(math.Ceil(center - radius - slopeTol))
		hi = int(math.Floor(center + radius + slopeTol))
		if lo < 0 {
			lo = 0
		}
		if hi > lenB-1 {
			hi = lenB - 1
		}
		for j := lo; j <= hi; j++ {
			m.set(i, j)
		}
	}

	return m
}

// itakura marks the cells inside a parallelogram whose edges are four
// slope-bounded lines drawn from both corners (0,0) and (lenA-1,lenB-1).
//
// The fractional maxSlope is mapped to an integer slope
// s = max(1, ⌊maxSlope·min(lenA,lenB)⌋) with reciprocal 1/s; both are
// scaled by lenA/lenB to account for unequal lengths. For each column j
// the allowed rows are the intersection of the "from start" and
// "from end" constraints:
//
//	lower(j) = max( sMin·j, (lenA-1) − sMax·(lenB-1) + sMax·j )
//	upper(j) = min( sMax·j, (lenA-1) − sMin·(lenB-1) + sMin·j )
//
// Degenerate columns (upper < lower, possible for very unequal lengths)
// are widened to the projected diagonal cell so the mask never goes
// empty, and both corner cells are forced reachable.
func itakura(lenA, lenB int, maxSlope float64) Matrix {
	m := newMatrix(lenA, lenB)

	var (
		slope = math.Max(1, math.Floor(maxSlope*float64(min(lenA, lenB))))
		scale = float64(lenA) / float64(lenB)
		sMax  = slope * scale
		sMin  = scale / slope

		lastA = float64(lenA - 1)
		lastB = float64(lenB - 1)

		col          float64
		lower, upper float64
		lo, hi, i, j int
		diag         int
	)
	for j = 0; j < lenB; j++ {
		col = float64(j)
		lower = math.Max(sMin*col, lastA-sMax*lastB+sMax*col)
		upper = math.Min(sMax*col, lastA-sMin*lastB+sMin*col)

		lo = int(math.Ceil(lower - slopeTol))
		hi = int(math.Floor(upper + slopeTol))
		if lo < 0 {
			lo = 0
		}
		if hi > lenA-1 {
			hi = lenA - 1
		}
		if hi < lo {
			// Widen a pinched column to the projected diagonal cell.
			if lenB == 1 {
				diag = 0
			} else {
				diag = int(math.Round(col * lastA / lastB))
			}
			lo, hi = diag, diag
		}
		for i = lo; i <= hi; i++ {
			m.set(i, j)
		}
	}

	// Both corners must stay reachable regardless of slope tightness.
	m.set(0, 0)
	m.set(lenA-1, lenB-1)

	return m
}
