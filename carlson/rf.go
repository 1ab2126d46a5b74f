package carlson

import "math"

// RF computes the Carlson integral of the first kind
//
//	RF(x,y,z) = (1/2) ∫₀^∞ dt / √((t+x)(t+y)(t+z)),
//
// symmetric in all three arguments, by the duplication theorem: each
// iteration replaces the arguments with their duplicated set, shrinking
// their deviations from the running average fourfold, until a short
// series in elementary symmetric polynomials reaches machine precision.
//
// Contract:
//   - x, y, z ≥ 0, at most one of them exactly 0; NaN rejected.
//
// Errors: ErrNaNArgument, ErrNegativeArgument, ErrTooManyZeros,
// ErrNoConvergence.
//
// Complexity: O(1) for the closed-form special cases; otherwise a
// handful of duplication steps (≤ 25 observed across 600 orders of
// magnitude of argument spread, capped at rfMaxIter).
func RF(x, y, z float64) (float64, error) {
	if err := validateSymmetric3(x, y, z); err != nil {
		return 0, err
	}
	v := rf(x, y, z)
	if math.IsNaN(v) {
		return 0, ErrNoConvergence
	}

	return v, nil
}

// RFUnchecked is RF without domain validation, for callers that have
// already proven the invariants. It returns NaN on convergence failure;
// behavior on violated preconditions is undefined.
func RFUnchecked(x, y, z float64) float64 {
	return rf(x, y, z)
}

// rf dispatches the ordered special-case table, then runs the general
// duplication loop. The guard order is load-bearing: each case assumes
// the earlier ones have been excluded.
func rf(x, y, z float64) float64 {
	// Canonical ascending order (RF is fully symmetric).
	x, y, z = ascending3(x, y, z)

	// All three equal: RF(x,x,x) = 1/√x.
	if x == z {
		return 1 / math.Sqrt(x)
	}

	// One argument zero (the complete case); sorting put it into x.
	if x == 0 {
		if y == z {
			// RF(0,y,y) = (π/2)/√y.
			return (math.Pi / 2) / math.Sqrt(y)
		}

		return rfComplete(y, z)
	}

	// Two equal, none zero: RF degenerates to RC(third, pair).
	if x == y {
		return rcPositive(z, x)
	}
	if y == z {
		return rcPositive(x, y)
	}

	// General duplication loop.
	xn, yn, zn := x, y, z
	an := (x + y + z) / 3
	a0 := an
	q := rfConvergenceScale * math.Max(math.Abs(an-x), math.Max(math.Abs(an-y), math.Abs(an-z)))
	scale := 1.0

	for n := 0; q >= math.Abs(an); n++ {
		if n >= rfMaxIter {
			return math.NaN()
		}
		sx, sy, sz := math.Sqrt(xn), math.Sqrt(yn), math.Sqrt(zn)
		lam := sx*sy + sy*sz + sz*sx
		xn = (xn + lam) / 4
		yn = (yn + lam) / 4
		zn = (zn + lam) / 4
		an = (an + lam) / 4
		scale *= 4
		q /= 2
	}

	dx := (a0 - x) / (an * scale)
	dy := (a0 - y) / (an * scale)

	return rfTail(dx, dy) / math.Sqrt(an)
}

// rfComplete evaluates RF(0,y,z) for distinct positive y, z through the
// arithmetic-geometric mean of √y and √z: RF(0,y,z) = π/(2·AGM(√y,√z)).
// The AGM converges quadratically, so the loop runs a handful of times.
func rfComplete(y, z float64) float64 {
	a, b := math.Sqrt(y), math.Sqrt(z)
	for i := 0; i < agmMaxIter; i++ {
		if math.Abs(a-b) <= agmTolFactor*epsilon*math.Abs(a) {
			break
		}
		a, b = (a+b)/2, math.Sqrt(a*b)
	}

	return math.Pi / (a + b)
}
