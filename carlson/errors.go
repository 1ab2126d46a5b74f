package carlson

import "errors"

// Sentinel errors returned by the checked entry points. The Unchecked
// twins never return errors; they collapse convergence failure into a
// quiet NaN instead.
var (
	// ErrNaNArgument indicates at least one argument is NaN.
	ErrNaNArgument = errors.New("carlson: argument is NaN")

	// ErrNegativeArgument indicates an argument that must be non-negative is negative.
	ErrNegativeArgument = errors.New("carlson: argument must be non-negative")

	// ErrTooManyZeros indicates more than one of x,y,z is zero.
	ErrTooManyZeros = errors.New("carlson: at most one argument may be zero")

	// ErrZeroArgument indicates an argument that must be non-zero is zero
	// (y in RC, z in RD, p in RJ).
	ErrZeroArgument = errors.New("carlson: argument must be non-zero")

	// ErrNoConvergence indicates the duplication loop exhausted its
	// iteration cap. The input is domain-valid but numerically
	// pathological; the call must not be retried.
	ErrNoConvergence = errors.New("carlson: duplication loop did not converge")
)
