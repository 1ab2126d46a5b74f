package legendre

import (
	"math"

	"github.com/katalvlaran/ellint/carlson"
)

// reduceAmplitude splits phi into k whole half-periods plus a residual
// amplitude in [-π/2, π/2): phi = k·π + phiR. The incomplete integrals
// of the first and second kind extend past |phi| > π/2 through their
// quasi-period, F(phi+kπ) = 2k·K(m) + F(phi).
func reduceAmplitude(phi float64) (k int, phiR float64) {
	k = int(math.Floor(phi/math.Pi + 0.5))

	return k, phi - float64(k)*math.Pi
}

// F computes the incomplete elliptic integral of the first kind,
//
//	F(phi,m) = ∫₀^phi dθ / √(1 - m·sin²θ)
//	         = sin(phi)·RF(cos²phi, 1 - m·sin²phi, 1),
//
// for any real phi, via the quasi-period reduction above.
//
// Contract: m·sin²phi ≤ 1 on the reduced amplitude; phi beyond
// [-π/2, π/2) additionally needs m < 1 (a finite complete integral).
//
// Errors: ErrNaNArgument, ErrParameter, ErrAmplitude.
func F(phi, m float64) (float64, error) {
	if math.IsNaN(phi) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	k, phiR := reduceAmplitude(phi)
	s, c := math.Sin(phiR), math.Cos(phiR)
	s2, c2 := s*s, c*c
	y := 1 - m*s2
	if y < 0 {
		return 0, ErrParameter
	}
	if y == 0 && c2 == 0 {
		// m == 1 at the half-period boundary: logarithmic divergence.
		return 0, ErrParameter
	}
	base := s * carlson.RFUnchecked(c2, y, 1)
	if k == 0 {
		return base, nil
	}
	if m >= 1 {
		return 0, ErrAmplitude
	}

	return 2*float64(k)*carlson.RFUnchecked(0, 1-m, 1) + base, nil
}

// EInc computes the incomplete elliptic integral of the second kind,
//
//	EInc(phi,m) = ∫₀^phi √(1 - m·sin²θ) dθ
//	            = sin(phi)·RF(...) - (m/3)·sin³(phi)·RD(...),
//
// for any real phi, with the quasi-period EInc(phi+kπ) = 2k·E(m) + EInc(phi).
//
// Contract: m·sin²phi ≤ 1 on the reduced amplitude; phi beyond
// [-π/2, π/2) additionally needs m ≤ 1.
//
// Errors: ErrNaNArgument, ErrParameter, ErrAmplitude.
func EInc(phi, m float64) (float64, error) {
	if math.IsNaN(phi) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	k, phiR := reduceAmplitude(phi)
	s, c := math.Sin(phiR), math.Cos(phiR)
	s2, c2 := s*s, c*c
	y := 1 - m*s2
	if y < 0 {
		return 0, ErrParameter
	}
	base := s * (carlson.RFUnchecked(c2, y, 1) - m/3*s2*carlson.RDUnchecked(c2, y, 1))
	if k == 0 {
		return base, nil
	}
	if m > 1 {
		return 0, ErrAmplitude
	}
	complete, err := E(m)
	if err != nil {
		return 0, err
	}

	return 2*float64(k)*complete + base, nil
}

// PiInc computes the incomplete elliptic integral of the third kind,
//
//	PiInc(phi,n,m) = ∫₀^phi dθ / ((1 - n·sin²θ)·√(1 - m·sin²θ))
//	              = sin·RF(...) + (n/3)·sin³·RJ(cos², 1-m·sin², 1, 1-n·sin²),
//
// restricted to |phi| ≤ π/2. When n·sin²phi > 1 the result is the
// Cauchy principal value, via RJ's negative-parameter continuation.
//
// Errors: ErrNaNArgument, ErrAmplitude, ErrParameter, ErrCharacteristic.
func PiInc(phi, n, m float64) (float64, error) {
	if math.IsNaN(phi) || math.IsNaN(n) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if math.Abs(phi) > math.Pi/2 {
		return 0, ErrAmplitude
	}
	s, c := math.Sin(phi), math.Cos(phi)
	s2, c2 := s*s, c*c
	y := 1 - m*s2
	if y < 0 {
		return 0, ErrParameter
	}
	p := 1 - n*s2
	if p == 0 {
		return 0, ErrCharacteristic
	}
	if s == 0 {
		return 0, nil
	}

	return s*carlson.RFUnchecked(c2, y, 1) + n/3*s2*s*carlson.RJUnchecked(c2, y, 1, p), nil
}

// DInc computes the incomplete form
//
//	DInc(phi,m) = ∫₀^phi sin²θ / √(1 - m·sin²θ) dθ
//	            = (sin³phi/3)·RD(cos²phi, 1 - m·sin²phi, 1),
//
// restricted to |phi| ≤ π/2.
//
// Errors: ErrNaNArgument, ErrAmplitude, ErrParameter.
func DInc(phi, m float64) (float64, error) {
	if math.IsNaN(phi) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if math.Abs(phi) > math.Pi/2 {
		return 0, ErrAmplitude
	}
	s, c := math.Sin(phi), math.Cos(phi)
	s2, c2 := s*s, c*c
	y := 1 - m*s2
	if y < 0 {
		return 0, ErrParameter
	}
	if s == 0 {
		return 0, nil
	}

	return s2 * s / 3 * carlson.RDUnchecked(c2, y, 1), nil
}
