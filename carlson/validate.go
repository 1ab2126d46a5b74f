// Package carlson - domain validation for the checked entry points.
//
// Validation is synchronous and never coerces: a violated precondition
// surfaces as a sentinel from errors.go before any arithmetic runs. The
// Unchecked entry points skip these checks entirely.
package carlson

import "math"

// validateSymmetric3 checks the shared RF/RD/RJ invariant on (x,y,z):
// no NaN, all non-negative, at most one exactly zero.
func validateSymmetric3(x, y, z float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		return ErrNaNArgument
	}
	if x < 0 || y < 0 || z < 0 {
		return ErrNegativeArgument
	}

	var zeros int
	if x == 0 {
		zeros++
	}
	if y == 0 {
		zeros++
	}
	if z == 0 {
		zeros++
	}
	if zeros > 1 {
		return ErrTooManyZeros
	}

	return nil
}

// validateNonNegative3 checks the RG invariant: no NaN, all
// non-negative. Any number of zeros is allowed.
func validateNonNegative3(x, y, z float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		return ErrNaNArgument
	}
	if x < 0 || y < 0 || z < 0 {
		return ErrNegativeArgument
	}

	return nil
}
