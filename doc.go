// Package ellint is a double-precision elliptic-integral library built
// around the Carlson symmetric forms — the canonical computational
// basis every classical elliptic integral reduces to.
//
// 🚀 What is ellint?
//
//	A pure, dependency-light numeric library that brings together:
//		• carlson/  — the core engine: RF, RD, RJ, RC, RG via the
//		  duplication theorem, with principal-value continuation and
//		  checked/unchecked entry points
//		• legendre/ — Legendre forms: K, E, Pi, D, F, EInc, PiInc,
//		  DInc, plus Jacobi Zeta and Heuman Lambda
//		• bulirsch/ — Bulirsch forms: cel, el1, el2, el3
//		• batch/    — elementwise slice evaluation with parallel
//		  fan-out past a length threshold
//		• cmd/ellint — a small CLI for one-off and CSV-stream evaluation
//
// ✨ Why choose ellint?
//
//   - Few-ulp accuracy — validated against 60-digit references across
//     the whole domain, including 600-orders-of-magnitude spreads
//   - Pure functions — no state, no locks, trivially thread-safe
//   - Strict sentinel errors — domain violations and convergence
//     failures are data, never panics
//   - Principal values — RC(x,y<0) and RJ(x,y,z,p<0) return their
//     finite Cauchy continuations
//
// Quick start:
//
//	v, err := carlson.RF(1, 2, 3)   // 0.7269459354689083
//	k, err := legendre.K(0.5)       // 1.8540746773013719
//
// See each subpackage's doc.go for contracts and examples.
package ellint
