// Package carlson - convergence schedule and numeric constants.
//
// Every tolerance below is derived from machine epsilon, never from an
// absolute magnitude: the duplication transform shrinks the argument
// deviations and the convergence bound at a predictable quartic rate, so
// the stop test compares the decaying bound against the running average.
package carlson

import "math"

// epsilon is the relative spacing of float64 values at 1.0 (2^-52).
const epsilon = 0x1p-52

// Iteration caps, per function. The duplication loop converges in ≤ 25
// steps even for argument spreads of 600 orders of magnitude; the caps
// leave generous headroom and bound pathological inputs.
const (
	// rfMaxIter caps the RF duplication loop.
	rfMaxIter = 100
	// rdMaxIter caps the RD duplication loop.
	rdMaxIter = 100
	// rjMaxIter caps the RJ duplication loop.
	rjMaxIter = 100
	// agmMaxIter caps the quadratically convergent AGM fast paths
	// (RF/RD/RG with a zero argument). The AGM doubles correct digits
	// per step; 60 is far beyond what float64 can ever need.
	agmMaxIter = 60
)

// agmTolFactor scales the AGM stop test: iterate while |a-b| exceeds
// agmTolFactor·epsilon·a.
const agmTolFactor = 2.7

// seriesErrExp is the exponent of the truncated-series error: the tails
// in series.go are accurate to O(dev^8), so the initial convergence
// bound is epsilon^(-1/8) scaled by the largest deviation from the
// running average. The bound is then halved per iteration while the
// deviations themselves shrink fourfold, which over-satisfies the
// series accuracy requirement at the stop point.
const seriesErrExp = -1.0 / 8.0

// Initial convergence-bound scales, one per duplication engine.
var (
	// rfConvergenceScale multiplies RF's largest initial deviation.
	rfConvergenceScale = math.Pow(3*epsilon, seriesErrExp)
	// rdConvergenceScale multiplies RD's largest initial deviation.
	rdConvergenceScale = math.Pow(0.25*epsilon, seriesErrExp)
	// rjConvergenceScale multiplies RJ's largest initial deviation.
	rjConvergenceScale = math.Pow(0.25*epsilon, seriesErrExp)
)

// rjPairGap is the minimum relative gap between p and a repeated y==z
// pair for RJ's two-RC closed form: below it the subtraction of two
// nearly equal RC values loses precision in the general closed form and
// the duplication loop is used instead.
const rjPairGap = 0.1

// rjNearUnitBand brackets e = δ/d² values close to -1, where the
// straightforward RC(1, 1+e) correction term cancels catastrophically
// and the argument is recomputed from the current square roots.
const (
	rjNearUnitLo = -1.5
	rjNearUnitHi = -0.5
)
