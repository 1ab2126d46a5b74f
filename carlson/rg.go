package carlson

import "math"

// RG computes the Carlson integral of the second kind
//
//	RG(x,y,z) = (1/4) ∫₀^∞ t·(x/(t+x) + y/(t+y) + z/(t+z))
//	            dt / √((t+x)(t+y)(t+z)),
//
// symmetric in all three arguments. RG needs no iteration of its own:
// it is a pure algebraic composition of RF and RD, plus an AGM special
// case for a zero argument.
//
// Contract:
//   - x, y, z ≥ 0; any number of them may be 0; NaN rejected.
//
// Errors: ErrNaNArgument, ErrNegativeArgument, ErrNoConvergence
// (propagated from the underlying RF/RD evaluation).
//
// Complexity: one RF plus one RD in the general case.
func RG(x, y, z float64) (float64, error) {
	if err := validateNonNegative3(x, y, z); err != nil {
		return 0, err
	}
	v := rg(x, y, z)
	if math.IsNaN(v) {
		return 0, ErrNoConvergence
	}

	return v, nil
}

// RGUnchecked is RG without domain validation. It returns NaN on
// convergence failure; behavior on violated preconditions is undefined.
func RGUnchecked(x, y, z float64) float64 {
	return rg(x, y, z)
}

// rg reorders the arguments so z is the largest — which makes
// (x-z)(y-z) ≥ 0 and keeps the final combination cancellation-free —
// then dispatches the equality/zero table before composing RF and RD.
func rg(x, y, z float64) float64 {
	// Canonical ascending order; z is then the maximum, which makes
	// the RD coefficient (x-z)(y-z) non-negative below.
	x, y, z = ascending3(x, y, z)

	// All equal (covers all-zero): RG(x,x,x) = √x.
	if x == z {
		return math.Sqrt(x)
	}

	// Zero-argument cases; sorting put any zeros first, and z > 0
	// because the all-zero tuple was handled above.
	if y == 0 {
		// RG(0,0,z) = √z/2.
		return math.Sqrt(z) / 2
	}
	if x == 0 {
		if y == z {
			// RG(0,y,y) = (π/4)·√y.
			return (math.Pi / 4) * math.Sqrt(y)
		}

		return rgComplete(y, z)
	}

	// Two equal, none zero: 2·RG(x,y,y) = y·RC(x,y) + √x.
	if x == y {
		return (x*rcPositive(z, x) + math.Sqrt(z)) / 2
	}
	if y == z {
		return (y*rcPositive(x, y) + math.Sqrt(x)) / 2
	}

	// General composition; z is the maximum, so the RD coefficient
	// (x-z)(y-z) is non-negative and √(xy/z) is finite.
	return (z*rf(x, y, z) - (x-z)*(y-z)*rd(x, y, z)/3 + math.Sqrt(x*y/z)) / 2
}

// rgComplete evaluates RG(0,y,z) for distinct positive y < z through
// the AGM of √z and √y with an accumulated difference sum:
//
//	2·RG(0,y,z) = (z - S)·π/(2·AGM),  S = (z-y)/2 + Σ 2^(n-1)·cn².
//
// Structurally this is rfComplete's loop with the correction sum of
// rdComplete, combined differently.
func rgComplete(y, z float64) float64 {
	a, b := math.Sqrt(z), math.Sqrt(y)
	sum := (z - y) / 2
	weight := 1.0

	for i := 0; i < agmMaxIter; i++ {
		if math.Abs(a-b) <= agmTolFactor*epsilon*math.Abs(a) {
			break
		}
		c := (a - b) / 2
		a, b = (a+b)/2, math.Sqrt(a*b)
		sum += weight * c * c
		weight *= 2
	}

	return (z - sum) * math.Pi / (a + b) / 2
}
