package carlson

import "math"

// RJ computes the Carlson integral of the third kind
//
//	RJ(x,y,z,p) = (3/2) ∫₀^∞ dt / ((t+p)·√((t+x)(t+y)(t+z))),
//
// symmetric in x, y, z. This is the numerically tightest engine in the
// package: it combines the duplication series with an independently
// convergent sum of RC-valued correction terms, and continues p < 0
// inputs to their Cauchy principal value.
//
// Contract:
//   - x, y, z ≥ 0, at most one of them 0; p ≠ 0; NaN rejected.
//   - p < 0 yields the Cauchy principal value, which is finite.
//
// Errors: ErrNaNArgument, ErrNegativeArgument, ErrTooManyZeros,
// ErrZeroArgument (p == 0), ErrNoConvergence.
//
// Complexity: as RF plus one RC evaluation per duplication step; the
// p < 0 continuation costs one RJ, one RF and one RC on transformed
// arguments.
func RJ(x, y, z, p float64) (float64, error) {
	if err := validateSymmetric3(x, y, z); err != nil {
		return 0, err
	}
	if math.IsNaN(p) {
		return 0, ErrNaNArgument
	}
	if p == 0 {
		return 0, ErrZeroArgument
	}
	v := rj(x, y, z, p)
	if math.IsNaN(v) {
		return 0, ErrNoConvergence
	}

	return v, nil
}

// RJUnchecked is RJ without domain validation. It returns NaN on
// convergence failure; behavior on violated preconditions is undefined.
func RJUnchecked(x, y, z, p float64) float64 {
	return rj(x, y, z, p)
}

// rj handles the p < 0 continuation, dispatches the ordered
// special-case table for p > 0, then runs the general duplication loop.
func rj(x, y, z, p float64) float64 {
	// Canonical ascending order of the symmetric triple.
	x, y, z = ascending3(x, y, z)

	// Cauchy principal value: transform to an equivalent positive
	// parameter before any other branch. With x ≤ y ≤ z and q = -p,
	//
	//	p' = (z(x+y+q) - xy)/(z+q) > 0,
	//
	// and the result recombines RJ, RF and RC on the shifted arguments.
	if p < 0 {
		q := -p
		pn := (z*(x+y+q) - x*y) / (z + q)
		b := x*y + pn*q
		num := (pn-z)*rj(x, y, z, pn) - 3*rf(x, y, z) +
			3*math.Sqrt(x*y*z/b)*rcPositive(b, pn*q)

		return num / (z + q)
	}

	// All three equal.
	if x == z {
		if x == p {
			// RJ(x,x,x,x) = x^(-3/2).
			return 1 / (x * math.Sqrt(x))
		}
		// RJ(x,x,x,p) = 3·(RC(x,p) - 1/√x)/(x-p).
		return 3 * (rcPositive(x, p) - 1/math.Sqrt(x)) / (x - p)
	}

	// Move a low repeated pair into the (y,z) slots.
	if x == y {
		x, z = z, x
	}
	if y == z {
		if p == y {
			// RJ(x,y,y,y) = RD(x,y,y).
			return rd(x, y, y)
		}
		if math.Abs(p-y) > rjPairGap*math.Max(p, y) {
			// RJ(x,y,y,p) = 3·(RC(x,y) - RC(x,p))/(p-y), safe only
			// while the two RC values are far enough apart.
			return 3 * (rcPositive(x, y) - rcPositive(x, p)) / (p - y)
		}
	}
	if z == p {
		// RJ(x,y,z,z) = RD(x,y,z).
		return rd(x, y, z)
	}

	// General duplication loop. δ = (p-x)(p-y)(p-z) scales as the cube
	// of the linear shrink, hence the division by 64 per step.
	xn, yn, zn, pn := x, y, z, p
	an := (x + y + z + 2*p) / 5
	a0 := an
	delta := (p - x) * (p - y) * (p - z)
	q := rjConvergenceScale * math.Max(
		math.Max(math.Abs(an-x), math.Abs(an-y)),
		math.Max(math.Abs(an-z), math.Abs(an-p)),
	)
	scale := 1.0
	sum := 0.0

	for n := 0; q >= math.Abs(an); n++ {
		if n >= rjMaxIter {
			return math.NaN()
		}
		sx, sy, sz, sp := math.Sqrt(xn), math.Sqrt(yn), math.Sqrt(zn), math.Sqrt(pn)
		lam := sx*sy + sy*sz + sz*sx
		d := (sp + sx) * (sp + sy) * (sp + sz)
		e := delta / (d * d)

		var corr float64
		if e > rjNearUnitLo && e < rjNearUnitHi {
			// Near-singular configuration: 1+e cancels. Recompute it
			// from the identity d² + δ = 2·√pn·(pn+λ)·d, which needs
			// only the current roots.
			corr = rc(1, 2*sp*(pn+lam)/d)
		} else {
			corr = rc(1, 1+e)
		}
		sum += corr / (scale * d)

		xn = (xn + lam) / 4
		yn = (yn + lam) / 4
		zn = (zn + lam) / 4
		pn = (pn + lam) / 4
		an = (an + lam) / 4
		scale *= 4
		delta /= 64
		q /= 2
	}

	dx := (a0 - x) / (an * scale)
	dy := (a0 - y) / (an * scale)
	dz := (a0 - z) / (an * scale)

	return rjTail(dx, dy, dz)/(scale*an*math.Sqrt(an)) + 6*sum
}
