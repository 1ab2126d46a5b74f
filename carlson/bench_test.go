package carlson_test

import (
	"testing"

	"github.com/katalvlaran/ellint/carlson"
)

// sink prevents the compiler from eliding the benchmarked calls.
var sink float64

// BenchmarkRF_General measures the duplication loop on a generic
// triple that takes no fast path.
func BenchmarkRF_General(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RFUnchecked(1.3, 2.7, 4.1)
	}
}

// BenchmarkRF_WideSpread measures the worst observed iteration count:
// arguments spanning many orders of magnitude.
func BenchmarkRF_WideSpread(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RFUnchecked(1e-8, 1, 1e8)
	}
}

// BenchmarkRF_Complete measures the AGM fast path for a zero argument.
func BenchmarkRF_Complete(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RFUnchecked(0, 0.3, 1)
	}
}

// BenchmarkRD_General measures the second-kind loop with its running
// correction sum.
func BenchmarkRD_General(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RDUnchecked(1.3, 2.7, 4.1)
	}
}

// BenchmarkRJ_General measures the third-kind loop, the most expensive
// engine: one RC evaluation per duplication step.
func BenchmarkRJ_General(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RJUnchecked(1.3, 2.7, 4.1, 0.9)
	}
}

// BenchmarkRJ_PrincipalValue measures the p < 0 continuation, which
// recombines RJ, RF and RC on shifted arguments.
func BenchmarkRJ_PrincipalValue(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RJUnchecked(1.3, 2.7, 4.1, -0.9)
	}
}

// BenchmarkRC_ClosedForm measures the elementary degenerate case.
func BenchmarkRC_ClosedForm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RCUnchecked(1.3, 2.7)
	}
}

// BenchmarkRG_General measures the RF+RD composition.
func BenchmarkRG_General(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = carlson.RGUnchecked(1.3, 2.7, 4.1)
	}
}

// BenchmarkRF_Checked quantifies the validation overhead of the
// checked entry against its unchecked twin above.
func BenchmarkRF_Checked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = carlson.RF(1.3, 2.7, 4.1)
	}
}
