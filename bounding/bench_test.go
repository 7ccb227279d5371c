package bounding_test

import (
	"testing"

	"github.com/katalvlaran/warp/bounding"
)

// benchmarkNew builds a (n×m) mask with opts once per iteration and
// fails on unexpected errors.
func benchmarkNew(b *testing.B, n, m int, opts bounding.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bounding.New(n, m, opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_FullSmall benchmarks the unconstrained 100×100 mask.
func BenchmarkNew_FullSmall(b *testing.B) {
	benchmarkNew(b, 100, 100, bounding.DefaultOptions())
}

// BenchmarkNew_FullMedium benchmarks the unconstrained 500×500 mask.
func BenchmarkNew_FullMedium(b *testing.B) {
	benchmarkNew(b, 500, 500, bounding.DefaultOptions())
}

// BenchmarkNew_SakoeChibaMedium benchmarks a 500×500 band mask.
func BenchmarkNew_SakoeChibaMedium(b *testing.B) {
	opts := bounding.DefaultOptions()
	opts.Window = 0.1
	benchmarkNew(b, 500, 500, opts)
}

// BenchmarkNew_ItakuraMedium benchmarks a 500×500 parallelogram mask.
func BenchmarkNew_ItakuraMedium(b *testing.B) {
	opts := bounding.DefaultOptions()
	opts.ItakuraMaxSlope = 0.2
	benchmarkNew(b, 500, 500, opts)
}
