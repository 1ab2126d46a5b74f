// Package batch maps the Carlson integrals elementwise over equal-length
// argument slices, sequentially for small inputs and with parallel
// fan-out past an empirically chosen length threshold.
//
// 🚀 Why a batch layer?
//
//	Every Carlson engine call is pure, short and stack-local, so bulk
//	workloads are embarrassingly data-parallel: one call per tuple, no
//	ordering constraint, no shared state. The only decision left is the
//	sequential/parallel crossover, which affects throughput only — the
//	output is positional either way.
//
// ✨ Key features:
//   - one function per integral: RF, RD, RJ, RC, RG over slices
//   - contiguous chunking over errgroup workers above the threshold
//   - checked mode: the first domain error aborts the batch, wrapped
//     with its offending index (errors.Is-compatible with the carlson
//     sentinels)
//   - unchecked mode: no validation, no errors; convergence failures
//     stay in the output as NaN sentinels
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ellint/batch"
//
//	opts := batch.DefaultOptions()
//	out, err := batch.RF(xs, ys, zs, &opts)
//
// Determinism: results are identical for any worker count, since each
// element's computation is independent and outputs map positionally.
package batch
