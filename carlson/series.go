// Package carlson - elementary-symmetric series tails.
//
// Once the duplication loop has shrunk the normalized deviations of the
// arguments from their running average below the convergence bound, the
// integral equals a fixed-degree polynomial in the elementary symmetric
// combinations e2..e5 of those deviations, to machine precision. The
// coefficients are fixed by the mathematics (Carlson 1995, eqs. 2.7 and
// 2.16); they are not tunable.
package carlson

// rfTail evaluates the RF series in the deviations X, Y (Z = -X-Y).
// Truncation error is O(dev^8).
func rfTail(x, y float64) float64 {
	z := -x - y
	e2 := x*y - z*z
	e3 := x * y * z

	return 1 - e2/10 + e3/14 + e2*e2/24 - 3*e2*e3/44 -
		5*e2*e2*e2/208 + 3*e3*e3/104 + e2*e2*e3/16
}

// secondKindTail evaluates the shared RD/RJ series polynomial in the
// elementary symmetric combinations e2..e5. The two engines build the
// combinations differently (RD from X, Y, Z=-(X+Y)/3; RJ from X, Y, Z,
// P=-(X+Y+Z)/2) but the polynomial itself is identical because RD is
// the p→z degenerate case of RJ. Truncation error is O(dev^8).
func secondKindTail(e2, e3, e4, e5 float64) float64 {
	return 1 - 3*e2/14 + e3/6 + 9*e2*e2/88 - 3*e4/22 -
		9*e2*e3/52 + 3*e5/26 - e2*e2*e2/16 + 3*e3*e3/40 +
		3*e2*e4/20 + 45*e2*e2*e3/272 - 9*(e3*e4+e2*e5)/68
}

// rdTail builds RD's elementary symmetric combinations from the
// normalized deviations X, Y and evaluates the shared polynomial.
func rdTail(x, y float64) float64 {
	z := -(x + y) / 3
	zz := z * z
	xy := x * y
	e2 := xy - 6*zz
	e3 := (3*xy - 8*zz) * z
	e4 := 3 * (xy - zz) * zz
	e5 := xy * z * zz

	return secondKindTail(e2, e3, e4, e5)
}

// rjTail builds RJ's elementary symmetric combinations from the
// normalized deviations X, Y, Z and evaluates the shared polynomial.
func rjTail(x, y, z float64) float64 {
	p := -(x + y + z) / 2
	pp := p * p
	xyz := x * y * z
	e2 := x*y + x*z + y*z - 3*pp
	e3 := xyz + 2*e2*p + 4*p*pp
	e4 := (2*xyz + e2*p + 3*p*pp) * p
	e5 := xyz * pp

	return secondKindTail(e2, e3, e4, e5)
}
