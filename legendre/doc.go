// Package legendre evaluates Legendre-form elliptic integrals —
// complete and incomplete, first, second and third kind — plus Heuman's
// Lambda and Jacobi's Zeta, as thin closed-form clients of the Carlson
// symmetric engine.
//
// 🚀 Conventions:
//
//	All functions take the PARAMETER m (= k², the squared modulus), not
//	the modulus k, and the amplitude phi in radians:
//	  • K(m), E(m), Pi(n,m), D(m)          — complete forms
//	  • F(phi,m), EInc(phi,m)              — incomplete, any real phi
//	  • PiInc(phi,n,m), DInc(phi,m)        — incomplete, |phi| ≤ π/2
//	  • Zeta(phi,m), Lambda0(beta,m)       — Jacobi Zeta, Heuman Lambda
//
// ✨ Key features:
//   - every value is a closed algebraic combination of RF/RD/RJ/RC;
//     no iteration beyond what the Carlson engine performs internally
//   - F and EInc extend past |phi| > π/2 through the quasi-period
//     F(phi+kπ) = 2kK(m) + F(phi)
//   - negative parameter m and negative characteristic n are supported;
//     n > 1 continues Pi to its Cauchy principal value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ellint/legendre"
//
//	k, err := legendre.K(0.5)        // complete first kind
//	f, err := legendre.F(0.7, 0.5)   // incomplete first kind
//
// Domain errors are the sentinels in errors.go. The wrappers call the
// engine's unchecked entry points after their own validation, so an
// engine convergence failure (unreachable for in-domain arguments)
// would surface as NaN, not as an error.
package legendre
