// Package bounding - option types and sentinel errors.
//
// This file defines ONLY the public configuration surface and the
// package-level sentinel errors. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is. No function in
// this package panics on user input.
package bounding

import "errors"

// Unconstrained is the sentinel value meaning "constraint not set".
// Any negative value is treated the same way; Unconstrained keeps
// call sites readable.
const Unconstrained = -1.0

var (
	// ErrBadLength is returned when a sequence length is not positive.
	ErrBadLength = errors.New("bounding: sequence lengths must be positive")

	// ErrWindowOutOfRange is returned when Window is set outside [0, 1].
	ErrWindowOutOfRange = errors.New("bounding: window must lie in [0, 1]")

	// ErrSlopeOutOfRange is returned when ItakuraMaxSlope is set outside [0, 1].
	ErrSlopeOutOfRange = errors.New("bounding: itakura max slope must lie in [0, 1]")

	// ErrConflictingConstraints is returned when both Window and
	// ItakuraMaxSlope are set; the two constraint modes are mutually exclusive.
	ErrConflictingConstraints = errors.New("bounding: window and itakura max slope are mutually exclusive")
)

// Options selects the constraint mode for New.
//
// Fields:
//   - Window          — Sakoe–Chiba band radius as a fraction in [0, 1] of
//     max(lenA, lenB). Negative (Unconstrained) means no band.
//   - ItakuraMaxSlope — Itakura parallelogram slope as a fraction in [0, 1].
//     Negative (Unconstrained) means no parallelogram.
//
// When both fields are Unconstrained the mask is fully true.
// Setting both is an error (ErrConflictingConstraints).
type Options struct {
	Window          float64
	ItakuraMaxSlope float64
}

// DefaultOptions returns Options with no constraint set.
func DefaultOptions() Options {
	return Options{Window: Unconstrained, ItakuraMaxSlope: Unconstrained}
}

// Matrix is a read-only boolean mask over alignment cells.
// Entry (i, j) == true means an alignment path may visit cell (i, j).
// The zero value is an empty mask; construct via New, Full, SakoeChiba
// or Itakura.
type Matrix struct {
	rows  int
	cols  int
	cells []bool
}

// Rows returns the number of rows (length of the first sequence).
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (length of the second sequence).
func (m Matrix) Cols() int { return m.cols }

// At reports whether cell (i, j) is inside the allowed region.
// Out-of-range indices report false rather than panicking, so DP loops
// may probe neighbours without bounds checks of their own.
func (m Matrix) At(i, j int) bool {
	if i < 0 || j < 0 || i >= m.rows || j >= m.cols {
		return false
	}

	return m.cells[i*m.cols+j]
}

// CountTrue returns the number of reachable cells in the mask.
//
// Complexity: O(rows·cols).
func (m Matrix) CountTrue() int {
	var n int
	for _, v := range m.cells {
		if v {
			n++
		}
	}

	return n
}

// newMatrix allocates an all-false mask of the given shape.
// Callers have already validated rows > 0 and cols > 0.
func newMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// set marks cell (i, j) reachable. Private: masks are immutable once
// returned to callers.
func (m Matrix) set(i, j int) {
	m.cells[i*m.cols+j] = true
}
