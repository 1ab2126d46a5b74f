// Package bulirsch evaluates Bulirsch-form elliptic integrals — the
// general complete integral cel and the incomplete forms el1, el2, el3 —
// as thin closed-form clients of the Carlson symmetric engine.
//
// 🚀 Conventions:
//
//	Bulirsch's forms take the COMPLEMENTARY modulus kc (kc² = 1 - k²)
//	and, for the incomplete forms, x = tan(phi):
//	  • Cel(kc,p,a,b) — general complete integral; subsumes K, E, Pi
//	  • El1(x,kc)     — incomplete first kind
//	  • El2(x,kc,a,b) — incomplete second kind (general weights)
//	  • El3(x,kc,p)   — incomplete third kind
//
// ✨ Key features:
//   - each form is a single algebraic combination of RF/RD/RJ
//   - negative p in Cel/El3 is continued to the Cauchy principal value
//     through RJ's negative-parameter transform
//   - the incomplete forms are odd in x, matching Bulirsch's definition
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ellint/bulirsch"
//
//	v, err := bulirsch.Cel(kc, p, a, b)
//
// Domain errors are the sentinels in errors.go. The forms call the
// engine's unchecked entry points after their own validation, so an
// engine convergence failure (unreachable for in-domain arguments)
// would surface as NaN, not as an error.
package bulirsch
