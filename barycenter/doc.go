// Package barycenter computes a representative average sequence for a
// collection of time series under an elastic distance (DTW Barycenter
// Averaging).
//
// 🚀 What is DBA?
//
//	The arithmetic mean is meaningless for series that drift in phase:
//	averaging misaligned peaks smears them flat. DBA instead aligns
//	every series to a current estimate with an elastic distance, then
//	moves each estimate position to the mean of the values aligned to
//	it, and repeats until the total alignment cost stops improving.
//
// ✨ Key features:
//   - any elastic measure from warp/elastic (DTW, WDTW, MSM, TWE, …)
//   - Sakoe–Chiba or Itakura constraints forwarded to every alignment
//   - independent (per-channel) or dependent (joint-channel) averaging
//   - deterministic initialization policies: mean, medoid, seeded random
//   - parallel per-sequence alignment with a bounded worker pool
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warp/barycenter"
//
//	opts := barycenter.DefaultOptions()
//	opts.Metric = elastic.DTW
//	opts.Window = 0.2
//
//	avg, err := barycenter.Average(X, &opts)
//
// Guarantees:
//
//   - The result has the shape of the seed barycenter (channels × seed
//     length), regardless of input length variation.
//   - Total alignment cost is non-increasing across iterations; the
//     loop stops on relative improvement below Tol, on a non-improving
//     step, or at MaxIters.
//   - Deterministic: identical inputs and Seed give identical output.
//   - Inputs are read-only; the result is freshly allocated.
//
// Performance:
//
//   - Time:   O(MaxIters · N · n·m · channels) alignment work, spread
//     across Workers goroutines within each iteration.
//   - Memory: O(n·m) per in-flight alignment plus the accumulation
//     buffers (channels × seed length).
package barycenter
