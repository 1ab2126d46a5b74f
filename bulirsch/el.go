package bulirsch

import (
	"math"

	"github.com/katalvlaran/ellint/carlson"
)

// El1 computes Bulirsch's incomplete integral of the first kind,
//
//	el1(x,kc) = ∫₀^{arctan x} dθ / √(cos²θ + kc²·sin²θ)
//	          = x·RF(1, 1+kc²·x², 1+x²),
//
// odd in x. Unlike Cel, kc == 0 is fine here: the incomplete integral
// stays finite for finite x.
//
// Errors: ErrNaNArgument, ErrInfArgument.
func El1(x, kc float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(kc) {
		return 0, ErrNaNArgument
	}
	if math.IsInf(x, 0) {
		return 0, ErrInfArgument
	}
	x2 := x * x

	return x * carlson.RFUnchecked(1, 1+kc*kc*x2, 1+x2), nil
}

// El2 computes Bulirsch's incomplete integral of the second kind,
//
//	el2(x,kc,a,b) = ∫₀^{arctan x} (a + b·tan²θ) dθ /
//	                ((1 + tan²θ)·√(cos²θ + kc²·sin²θ))
//	              = a·el1(x,kc) + ((b-a)/3)·x³·RD(1, 1+kc²·x², 1+x²),
//
// odd in x; el2(x,kc,1,1) = el1(x,kc).
//
// Errors: ErrNaNArgument, ErrInfArgument.
func El2(x, kc, a, b float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(kc) || math.IsNaN(a) || math.IsNaN(b) {
		return 0, ErrNaNArgument
	}
	if math.IsInf(x, 0) {
		return 0, ErrInfArgument
	}
	x2 := x * x
	y := 1 + kc*kc*x2
	z := 1 + x2

	return a*x*carlson.RFUnchecked(1, y, z) +
		(b-a)/3*x2*x*carlson.RDUnchecked(1, y, z), nil
}

// El3 computes Bulirsch's incomplete integral of the third kind,
//
//	el3(x,kc,p) = ∫₀^{arctan x} dθ /
//	              ((cos²θ + p·sin²θ)·√(cos²θ + kc²·sin²θ))
//	            = el1(x,kc) + ((1-p)/3)·x³·RJ(1, 1+kc²·x², 1+x², 1+p·x²),
//
// odd in x. For 1+p·x² < 0 the result is the Cauchy principal value.
//
// Errors: ErrNaNArgument, ErrInfArgument, ErrZeroP (1+p·x² == 0).
func El3(x, kc, p float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(kc) || math.IsNaN(p) {
		return 0, ErrNaNArgument
	}
	if math.IsInf(x, 0) {
		return 0, ErrInfArgument
	}
	x2 := x * x
	pp := 1 + p*x2
	if pp == 0 {
		return 0, ErrZeroP
	}
	y := 1 + kc*kc*x2
	z := 1 + x2

	return x*carlson.RFUnchecked(1, y, z) +
		(1-p)/3*x2*x*carlson.RJUnchecked(1, y, z, pp), nil
}
