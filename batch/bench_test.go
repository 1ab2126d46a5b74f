package batch_test

import (
	"testing"

	"github.com/katalvlaran/ellint/batch"
)

// benchmarkRF runs the RF batch at a given size with the given options
// and keeps the output alive.
func benchmarkRF(b *testing.B, n int, opts *batch.Options) {
	xs, ys, zs := makeTriples(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := batch.RF(xs, ys, zs, opts)
		if err != nil {
			b.Fatalf("batch.RF failed: %v", err)
		}
		_ = out
	}
}

// BenchmarkRF_Sequential1k measures the sequential path below the
// default crossover.
func BenchmarkRF_Sequential1k(b *testing.B) {
	benchmarkRF(b, 1000, nil)
}

// BenchmarkRF_Sequential100k forces sequential evaluation on a large
// batch for comparison against the parallel run below.
func BenchmarkRF_Sequential100k(b *testing.B) {
	benchmarkRF(b, 100_000, &batch.Options{ParallelThreshold: 200_000})
}

// BenchmarkRF_Parallel100k measures the errgroup fan-out on the same
// large batch.
func BenchmarkRF_Parallel100k(b *testing.B) {
	benchmarkRF(b, 100_000, &batch.Options{ParallelThreshold: 1})
}

// BenchmarkRF_Unchecked100k quantifies the validation overhead at
// batch scale.
func BenchmarkRF_Unchecked100k(b *testing.B) {
	benchmarkRF(b, 100_000, &batch.Options{ParallelThreshold: 1, Unchecked: true})
}
