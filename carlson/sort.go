package carlson

// ascending2 orders a pair. Sorting the symmetric slots before any
// arithmetic makes results bit-identical under argument permutation,
// not merely equal to within rounding.
func ascending2(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}

	return a, b
}

// ascending3 orders a triple.
func ascending3(a, b, c float64) (float64, float64, float64) {
	a, b = ascending2(a, b)
	b, c = ascending2(b, c)
	a, b = ascending2(a, b)

	return a, b, c
}
