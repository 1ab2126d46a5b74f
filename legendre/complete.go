package legendre

import (
	"math"

	"github.com/katalvlaran/ellint/carlson"
)

// K computes the complete elliptic integral of the first kind,
//
//	K(m) = ∫₀^{π/2} dθ / √(1 - m·sin²θ) = RF(0, 1-m, 1).
//
// Contract: m < 1 (the integral diverges logarithmically at m = 1);
// negative m is valid.
//
// Errors: ErrNaNArgument, ErrParameter.
func K(m float64) (float64, error) {
	if math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m >= 1 {
		return 0, ErrParameter
	}

	return carlson.RFUnchecked(0, 1-m, 1), nil
}

// E computes the complete elliptic integral of the second kind,
//
//	E(m) = ∫₀^{π/2} √(1 - m·sin²θ) dθ = RF(0,1-m,1) - (m/3)·RD(0,1-m,1).
//
// Contract: m ≤ 1; E(1) = 1 exactly.
//
// Errors: ErrNaNArgument, ErrParameter.
func E(m float64) (float64, error) {
	if math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m > 1 {
		return 0, ErrParameter
	}
	if m == 1 {
		return 1, nil
	}

	return carlson.RFUnchecked(0, 1-m, 1) - m/3*carlson.RDUnchecked(0, 1-m, 1), nil
}

// Pi computes the complete elliptic integral of the third kind,
//
//	Pi(n,m) = ∫₀^{π/2} dθ / ((1 - n·sin²θ)·√(1 - m·sin²θ))
//	        = RF(0,1-m,1) + (n/3)·RJ(0,1-m,1,1-n).
//
// Contract: m < 1, n ≠ 1. For n > 1 the integrand has a pole on the
// path and the result is the Cauchy principal value, delivered by RJ's
// negative-parameter continuation.
//
// Errors: ErrNaNArgument, ErrParameter, ErrCharacteristic.
func Pi(n, m float64) (float64, error) {
	if math.IsNaN(n) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m >= 1 {
		return 0, ErrParameter
	}
	if n == 1 {
		return 0, ErrCharacteristic
	}

	return carlson.RFUnchecked(0, 1-m, 1) + n/3*carlson.RJUnchecked(0, 1-m, 1, 1-n), nil
}

// D computes the complete form D(m) = (K(m) - E(m))/m = RD(0,1-m,1)/3,
// the second-kind combination that stays finite as m → 0.
//
// Contract: m < 1.
//
// Errors: ErrNaNArgument, ErrParameter.
func D(m float64) (float64, error) {
	if math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m >= 1 {
		return 0, ErrParameter
	}

	return carlson.RDUnchecked(0, 1-m, 1) / 3, nil
}
