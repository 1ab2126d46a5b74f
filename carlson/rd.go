package carlson

import "math"

// RD computes the Carlson integral of the second kind
//
//	RD(x,y,z) = (3/2) ∫₀^∞ dt / ((t+z)·√((t+x)(t+y)(t+z))),
//
// symmetric in x and y only: the third slot carries the extra
// integration weight. The duplication loop mirrors RF's but accumulates
// a running correction sum across iterations and finishes with the
// five-term series tail.
//
// Contract:
//   - x, y ≥ 0, at most one of them 0; z > 0 strictly; NaN rejected.
//
// Errors: ErrNaNArgument, ErrNegativeArgument, ErrTooManyZeros,
// ErrZeroArgument (z == 0), ErrNoConvergence.
//
// Complexity: as RF.
func RD(x, y, z float64) (float64, error) {
	if err := validateSymmetric3(x, y, z); err != nil {
		return 0, err
	}
	if z == 0 {
		return 0, ErrZeroArgument
	}
	v := rd(x, y, z)
	if math.IsNaN(v) {
		return 0, ErrNoConvergence
	}

	return v, nil
}

// RDUnchecked is RD without domain validation. It returns NaN on
// convergence failure; behavior on violated preconditions is undefined.
func RDUnchecked(x, y, z float64) float64 {
	return rd(x, y, z)
}

// rd dispatches RD's ordered special-case table, then runs the general
// duplication loop with the per-iteration correction sum.
func rd(x, y, z float64) float64 {
	// Canonical order of the symmetric pair, then move any x==z
	// coincidence into the y==z form so the remaining guards see it.
	x, y = ascending2(x, y)
	if x == z {
		x, y = y, x
	}
	if y == z {
		if x == y {
			// RD(x,x,x) = x^(-3/2).
			return 1 / (x * math.Sqrt(x))
		}
		if x == 0 {
			// RD(0,y,y) = 3π/(4·y^(3/2)).
			return 3 * math.Pi / (4 * y * math.Sqrt(y))
		}
	}
	if x == 0 {
		return rdComplete(y, z)
	}

	// General duplication loop. Each step contributes
	// scaleInv/(√zn·(zn+λ)) to the correction sum before duplicating.
	xn, yn, zn := x, y, z
	an := (x + y + 3*z) / 5
	a0 := an
	q := rdConvergenceScale * math.Max(math.Abs(an-x), math.Max(math.Abs(an-y), math.Abs(an-z)))
	scale := 1.0
	sum := 0.0

	for n := 0; q >= math.Abs(an); n++ {
		if n >= rdMaxIter {
			return math.NaN()
		}
		sx, sy, sz := math.Sqrt(xn), math.Sqrt(yn), math.Sqrt(zn)
		lam := sx*sy + sy*sz + sz*sx
		sum += 1 / (scale * sz * (zn + lam))
		xn = (xn + lam) / 4
		yn = (yn + lam) / 4
		zn = (zn + lam) / 4
		an = (an + lam) / 4
		scale *= 4
		q /= 2
	}

	dx := (a0 - x) / (an * scale)
	dy := (a0 - y) / (an * scale)

	return rdTail(dx, dy)/(scale*an*math.Sqrt(an)) + 3*sum
}

// rdComplete evaluates RD(0,y,z) for positive y, z through the AGM of
// √(y/z) and 1 with an accumulated correction sum: in normalized form
//
//	RD(0,y,z) = 3·K·S / (m·z^(3/2)),  m = 1 - y/z,
//
// where K = π/(2·AGM) and S = m/2 + Σ 2^(n-1)·cn² over the AGM's
// difference terms. The m/2 head dominates S as m→0, so the division is
// well conditioned for every sign of m.
func rdComplete(y, z float64) float64 {
	t := y / z
	m := 1 - t
	a, b := 1.0, math.Sqrt(t)
	sum := m / 2
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
	k := math.Pi / (a + b)
	if m == 0 {
		// y == z is caught earlier; kept for exact float equality of t.
		return 3 * k / (2 * z * math.Sqrt(z))
	}

	return 3 * k * sum / (m * z * math.Sqrt(z))
}
