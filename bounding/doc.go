// Package bounding builds alignment-region masks for elastic distance
// computations over pairs of time series.
//
// 🚀 What is a bounding matrix?
//
//	A precomputed boolean mask of shape (lenA × lenB) telling a
//	dynamic-programming alignment which cells (i, j) it may visit.
//	Restricting the region both speeds up the search and enforces
//	domain constraints on how far the warping may stray.
//
// ✨ Supported regions:
//   - Full            — every cell reachable (no constraint)
//   - Sakoe–Chiba     — a band of fractional radius around the diagonal
//   - Itakura         — a slope-bounded parallelogram between the corners
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warp/bounding"
//
//	opts := bounding.DefaultOptions()
//	opts.Window = 0.2 // band radius = 20% of the longer series
//
//	bm, err := bounding.New(10, 10, opts)
//	if err != nil { ... }
//	_ = bm.At(3, 4) // may the path visit cell (3,4)?
//
// Guarantees:
//
//   - Pure and deterministic: same inputs ⇒ identical mask, no side effects.
//   - Both corner cells (0,0) and (lenA-1, lenB-1) are always reachable;
//     degenerate Itakura parallelograms are widened rather than left empty.
//   - Read-only after construction; safe to share across goroutines.
//
// Performance:
//
//   - Time:   O(lenA·lenB)
//   - Memory: O(lenA·lenB) (one bool per cell)
package bounding
