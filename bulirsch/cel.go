package bulirsch

import (
	"math"

	"github.com/katalvlaran/ellint/carlson"
)

// Cel computes Bulirsch's general complete elliptic integral
//
//	cel(kc,p,a,b) = ∫₀^{π/2} (a·cos²θ + b·sin²θ) dθ /
//	                ((cos²θ + p·sin²θ)·√(cos²θ + kc²·sin²θ))
//	              = a·RF(0,kc²,1) + ((b - a·p)/3)·RJ(0,kc²,1,p).
//
// Special cases: cel(kc,1,1,1) = K(1-kc²), cel(kc,1,1,kc²) = E(1-kc²).
//
// Contract: kc ≠ 0, p ≠ 0. For p < 0 the result is the Cauchy
// principal value, via RJ's negative-parameter continuation.
//
// Errors: ErrNaNArgument, ErrZeroKc, ErrZeroP.
func Cel(kc, p, a, b float64) (float64, error) {
	if math.IsNaN(kc) || math.IsNaN(p) || math.IsNaN(a) || math.IsNaN(b) {
		return 0, ErrNaNArgument
	}
	if kc == 0 {
		return 0, ErrZeroKc
	}
	if p == 0 {
		return 0, ErrZeroP
	}
	kc2 := kc * kc

	return a*carlson.RFUnchecked(0, kc2, 1) +
		(b-a*p)/3*carlson.RJUnchecked(0, kc2, 1, p), nil
}
