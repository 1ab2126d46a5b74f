package carlson

import "math"

// RC computes the degenerate Carlson integral
//
//	RC(x,y) = (1/2) ∫₀^∞ dt / ((t+y)·√(t+x)),
//
// the x==y degenerate case of RF. It evaluates entirely through closed
// elementary forms; no duplication loop is needed.
//
// Contract:
//   - x ≥ 0, y ≠ 0; NaN arguments are rejected.
//   - y < 0 yields the Cauchy principal value, which is finite.
//
// Errors: ErrNaNArgument, ErrNegativeArgument, ErrZeroArgument.
//
// Complexity: O(1).
func RC(x, y float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, ErrNaNArgument
	}
	if x < 0 {
		return 0, ErrNegativeArgument
	}
	if y == 0 {
		return 0, ErrZeroArgument
	}

	return rc(x, y), nil
}

// RCUnchecked is RC without domain validation, for callers that have
// already proven x ≥ 0 and y ≠ 0. Behavior on violated preconditions is
// undefined (typically NaN, but not guaranteed).
func RCUnchecked(x, y float64) float64 {
	return rc(x, y)
}

// rc applies the principal-value continuation for y < 0 and dispatches
// to the positive-y closed forms. The continuation substitutes
// x' = x-y, y' = -y and scales by √(x/x'); it must run before any other
// branch because the closed forms below assume y > 0.
func rc(x, y float64) float64 {
	if y < 0 {
		return math.Sqrt(x/(x-y)) * rcPositive(x-y, -y)
	}

	return rcPositive(x, y)
}

// rcPositive evaluates RC for x ≥ 0, y > 0 through the closed-form
// dispatch table. Branch order matters: each guard assumes the earlier
// ones have excluded a degenerate division or a canceling subtraction.
func rcPositive(x, y float64) float64 {
	switch {
	case x == 0:
		// RC(0,y) = (π/2)/√y.
		return (math.Pi / 2) / math.Sqrt(y)
	case x == y:
		// RC(x,x) = 1/√x.
		return 1 / math.Sqrt(x)
	case y > x:
		// Circular branch: atan keeps full precision as y→x⁺.
		return math.Atan(math.Sqrt((y-x)/x)) / math.Sqrt(y-x)
	}

	// Hyperbolic branch, 0 < y < x. The naive log form subtracts nearly
	// equal quantities as y→x⁻; switch to Log1p once y/x > 1/2.
	d := x - y
	sd := math.Sqrt(d)
	if y/x > 0.5 {
		return math.Log1p(2*(d+math.Sqrt(x*d))/y) / (2 * sd)
	}

	return math.Log((math.Sqrt(x)+sd)/math.Sqrt(y)) / sd
}
