package batch

import "errors"

var (
	// ErrLengthMismatch indicates the argument slices differ in length.
	ErrLengthMismatch = errors.New("batch: argument slices must have equal length")

	// ErrBadOptions indicates a negative threshold or worker count.
	ErrBadOptions = errors.New("batch: options fields must be non-negative")
)

// DefaultParallelThreshold is the input length at which parallel
// fan-out starts to pay for its goroutine overhead. The crossover was
// measured with the bench suite; per-element cost is a few hundred
// nanoseconds, so small batches are faster sequentially.
const DefaultParallelThreshold = 2048

// Options configures batch evaluation.
//
// Fields:
//   - ParallelThreshold — minimum input length for parallel fan-out;
//     0 means DefaultParallelThreshold.
//   - Workers — number of concurrent chunks; 0 means GOMAXPROCS.
//   - Unchecked — map the Unchecked entry points: no validation, no
//     errors, NaN sentinels left in the output.
type Options struct {
	ParallelThreshold int
	Workers           int
	Unchecked         bool
}

// DefaultOptions returns the canonical batch configuration: checked
// evaluation, default crossover, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		ParallelThreshold: DefaultParallelThreshold,
		Workers:           0,
		Unchecked:         false,
	}
}
