// Package carlson evaluates the Carlson symmetric elliptic integrals
// RF, RD, RJ, RC and RG in IEEE double precision.
//
// 🚀 What are the Carlson forms?
//
//	Every classical elliptic integral — Legendre's K, E, F, Π, Bulirsch's
//	cel/el, Heuman's Lambda, Jacobi's Zeta — reduces to one of five
//	symmetric forms by a closed algebraic substitution:
//	  • RF(x,y,z)   — first kind, fully symmetric
//	  • RD(x,y,z)   — second kind (degenerate RJ), symmetric in x,y
//	  • RJ(x,y,z,p) — third kind, symmetric in x,y,z
//	  • RC(x,y)     — degenerate RF(x,y,y), elementary closed forms
//	  • RG(x,y,z)   — second kind, fully symmetric, no own iteration
//
// ✨ Key features:
//   - duplication-theorem iteration with a per-function convergence
//     schedule derived from machine epsilon (no absolute tolerances)
//   - ordered special-case dispatch for equal / zero arguments, both for
//     speed and because the general loop is singular at those points
//   - Cauchy principal value for RC with y < 0 and RJ with p < 0
//   - AGM fast paths for the complete cases RF(0,y,z), RD(0,y,z), RG(0,y,z)
//   - two access levels per integral: a checked entry point returning
//     sentinel errors, and an Unchecked twin for callers that have
//     already proven the domain invariants
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ellint/carlson"
//
//	v, err := carlson.RF(1, 2, 3)
//	if err != nil {
//	  // ErrNaNArgument, ErrNegativeArgument, ErrTooManyZeros, ErrNoConvergence
//	}
//
//	// hot path, arguments proven valid upstream:
//	v = carlson.RFUnchecked(cos2, 1-m*sin2, 1) // NaN only on convergence failure
//
// Concurrency:
//
//	All functions are pure and allocation-free; every call's state is
//	stack-local. Concurrent callers never interact.
//
// Accuracy:
//
//	Results match 60-digit references within a few ulps across the whole
//	valid domain, including argument spreads of hundreds of orders of
//	magnitude and principal-value continuations.
//
// See example_test.go for runnable scenarios.
package carlson
