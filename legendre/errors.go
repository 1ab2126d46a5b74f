package legendre

import "errors"

var (
	// ErrNaNArgument indicates at least one argument is NaN.
	ErrNaNArgument = errors.New("legendre: argument is NaN")

	// ErrParameter indicates the parameter m lies outside the function's
	// valid range (e.g. m ≥ 1 for K, m·sin²(phi) > 1 for F).
	ErrParameter = errors.New("legendre: parameter m out of range")

	// ErrCharacteristic indicates the characteristic n makes the
	// integrand's pole coincide with the integration path endpoint
	// (n == 1 for Pi, n·sin²(phi) == 1 for PiInc).
	ErrCharacteristic = errors.New("legendre: characteristic n out of range")

	// ErrAmplitude indicates the amplitude phi lies outside the
	// function's supported range (|phi| > π/2 for PiInc/DInc, or the
	// quasi-period extension needs a divergent complete integral).
	ErrAmplitude = errors.New("legendre: amplitude phi out of range")
)
