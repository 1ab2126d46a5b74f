package legendre

import "math"

// Zeta computes Jacobi's Zeta function,
//
//	Z(phi,m) = EInc(phi,m) - E(m)·F(phi,m)/K(m),
//
// for any real phi; the quasi-period contributions of EInc and F cancel,
// so Z is π-periodic by construction.
//
// Contract: m < 1.
//
// Errors: ErrNaNArgument, ErrParameter.
func Zeta(phi, m float64) (float64, error) {
	if math.IsNaN(phi) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m >= 1 {
		return 0, ErrParameter
	}
	e, err := EInc(phi, m)
	if err != nil {
		return 0, err
	}
	f, err := F(phi, m)
	if err != nil {
		return 0, err
	}
	ce, err := E(m)
	if err != nil {
		return 0, err
	}
	ck, err := K(m)
	if err != nil {
		return 0, err
	}

	return e - ce*f/ck, nil
}

// Lambda0 computes Heuman's Lambda function,
//
//	Λ₀(beta,m) = (2/π)·[E(m)·F(beta,1-m) + K(m)·EInc(beta,1-m)
//	                    - K(m)·F(beta,1-m)],
//
// for |beta| ≤ π/2 and 0 ≤ m < 1. Λ₀(±π/2, m) = ±1 for every valid m.
//
// Errors: ErrNaNArgument, ErrParameter, ErrAmplitude.
func Lambda0(beta, m float64) (float64, error) {
	if math.IsNaN(beta) || math.IsNaN(m) {
		return 0, ErrNaNArgument
	}
	if m < 0 || m >= 1 {
		return 0, ErrParameter
	}
	if math.Abs(beta) > math.Pi/2 {
		return 0, ErrAmplitude
	}
	if math.Abs(beta) == math.Pi/2 {
		// Exact endpoint; the complementary F diverges when m == 0.
		return math.Copysign(1, beta), nil
	}
	mc := 1 - m
	f, err := F(beta, mc)
	if err != nil {
		return 0, err
	}
	e, err := EInc(beta, mc)
	if err != nil {
		return 0, err
	}
	ce, err := E(m)
	if err != nil {
		return 0, err
	}
	ck, err := K(m)
	if err != nil {
		return 0, err
	}

	return 2 / math.Pi * (ce*f + ck*e - ck*f), nil
}
