package elastic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/bounding"
	"github.com/katalvlaran/warp/elastic"
)

// benchSeries builds a deterministic single-channel series of length n.
func benchSeries(n int, phase float64) [][]float64 {
	q := make([]float64, n)
	for i := range q {
		q[i] = math.Sin(float64(i)/7 + phase)
	}

	return [][]float64{q}
}

// benchmarkDistance runs one measure on n×n series, optionally banded.
func benchmarkDistance(b *testing.B, m elastic.Metric, n int, window float64) {
	var (
		x    = benchSeries(n, 0)
		y    = benchSeries(n, 0.5)
		tn   = elastic.TransformedLength(m, n)
		opts = bounding.DefaultOptions()
	)
	opts.Window = window
	bm, err := bounding.New(tn, tn, opts)
	if err != nil {
		b.Fatalf("bounding failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := elastic.Distance(m, x, y, bm, nil); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_DTWSmall benchmarks unconstrained DTW on 100×100.
func BenchmarkDistance_DTWSmall(b *testing.B) {
	benchmarkDistance(b, elastic.DTW, 100, bounding.Unconstrained)
}

// BenchmarkDistance_DTWMedium benchmarks unconstrained DTW on 500×500.
func BenchmarkDistance_DTWMedium(b *testing.B) {
	benchmarkDistance(b, elastic.DTW, 500, bounding.Unconstrained)
}

// BenchmarkDistance_DTWBanded benchmarks DTW on 500×500 with a 10% band.
func BenchmarkDistance_DTWBanded(b *testing.B) {
	benchmarkDistance(b, elastic.DTW, 500, 0.1)
}

// BenchmarkDistance_TWEMedium benchmarks TWE on 500×500.
func BenchmarkDistance_TWEMedium(b *testing.B) {
	benchmarkDistance(b, elastic.TWE, 500, bounding.Unconstrained)
}

// BenchmarkDistance_MSMMedium benchmarks MSM on 500×500.
func BenchmarkDistance_MSMMedium(b *testing.B) {
	benchmarkDistance(b, elastic.MSM, 500, bounding.Unconstrained)
}

// BenchmarkAlignmentPath_DTWMedium benchmarks path recovery on 500×500.
func BenchmarkAlignmentPath_DTWMedium(b *testing.B) {
	var (
		x     = benchSeries(500, 0)
		y     = benchSeries(500, 0.5)
		bm, _ = bounding.Full(500, 500)
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := elastic.AlignmentPath(elastic.DTW, x, y, bm, nil); err != nil {
			b.Fatalf("AlignmentPath failed: %v", err)
		}
	}
}
