package bulirsch

import "errors"

var (
	// ErrNaNArgument indicates at least one argument is NaN.
	ErrNaNArgument = errors.New("bulirsch: argument is NaN")

	// ErrZeroKc indicates kc == 0 where the complete integral diverges.
	ErrZeroKc = errors.New("bulirsch: kc must be non-zero")

	// ErrZeroP indicates p == 0 (Cel) or 1+p·x² == 0 (El3), where the
	// integrand's pole makes the form undefined.
	ErrZeroP = errors.New("bulirsch: characteristic p out of range")

	// ErrInfArgument indicates a non-finite x for the incomplete forms.
	ErrInfArgument = errors.New("bulirsch: argument must be finite")
)
