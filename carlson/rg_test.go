package carlson_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ellint/carlson"
	"github.com/stretchr/testify/assert"
)

// TestRG_Fixtures checks RG against high-precision reference values,
// covering the general composition, the zero-argument AGM path, and a
// wide argument spread.
func TestRG_Fixtures(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z float64
		want    float64
	}{
		{"general small ints", 1, 2, 3, 1.40184709999089509943},
		{"general RG(2,3,4)", 2, 3, 4, 1.72550302806922776011},
		{"zero argument", 0, 0.0796, 4, 1.02847580902880400098},
		{"wide spread", 1e-4, 1, 1e4, 5.00137306161157728878e1},
	}
	for _, tc := range cases {
		got, err := carlson.RG(tc.x, tc.y, tc.z)
		assert.NoError(t, err, tc.name)
		assert.InEpsilon(t, tc.want, got, relTol, tc.name)
	}
}

// TestRG_ClosedForms verifies the exact special cases, including the
// fully degenerate tuples RG allows that RF rejects.
func TestRG_ClosedForms(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z float64
		want    float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"two zeros", 0, 0, 4, 1},
		{"two zeros permuted", 4, 0, 0, 1},
		{"all equal", 9, 9, 9, 3},
		{"zero with pair", 0, 4, 4, math.Pi / 2},
	}
	for _, tc := range cases {
		got, err := carlson.RG(tc.x, tc.y, tc.z)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

// TestRG_PermutationSymmetry verifies that every permutation of the
// arguments yields the identical float64.
func TestRG_PermutationSymmetry(t *testing.T) {
	base := carlson.RGUnchecked(1, 2, 3)
	perms := [][3]float64{
		{1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, p := range perms {
		assert.Equal(t, base, carlson.RGUnchecked(p[0], p[1], p[2]),
			"RG%v must equal RG(1,2,3) bit for bit", p)
	}
}

// TestRG_CircumferenceOfEllipse checks RG's defining application: the
// perimeter of an ellipse with semi-axes a, b equals 8·RG(0,a²,b²).
func TestRG_CircumferenceOfEllipse(t *testing.T) {
	// Unit circle: 8·RG(0,1,1) must give 2π.
	got, err := carlson.RG(0, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, math.Pi/4, got, "RG(0,1,1) must be exactly π/4")

	// E(m) = 2·RG(0,1-m,1); cross-check against the reference value
	// of the complete integral at m = 1/2.
	e, err := carlson.RG(0, 0.5, 1)
	assert.NoError(t, err)
	assert.InEpsilon(t, 1.35064388104767550252, 2*e, relTol, "2·RG(0,1-m,1) must equal E(m)")
}

// TestRG_DomainErrors exercises the sentinels of the checked entry.
// Unlike RF, any number of zeros is valid.
func TestRG_DomainErrors(t *testing.T) {
	_, err := carlson.RG(math.NaN(), 1, 2)
	assert.ErrorIs(t, err, carlson.ErrNaNArgument, "NaN must error")

	_, err = carlson.RG(1, 2, -3)
	assert.ErrorIs(t, err, carlson.ErrNegativeArgument, "negative must error")
}

// TestRG_Unchecked verifies the unchecked twin matches the checked
// entry on valid input.
func TestRG_Unchecked(t *testing.T) {
	want, err := carlson.RG(2, 3, 4)
	assert.NoError(t, err)
	assert.Equal(t, want, carlson.RGUnchecked(2, 3, 4), "checked and unchecked must agree bit for bit")
}
