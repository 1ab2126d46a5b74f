package carlson_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ellint/carlson"
	"github.com/stretchr/testify/assert"
)

// relTol is the relative tolerance used across the fixture tables.
// Reference values were produced by a 60-digit decimal evaluation of
// the defining integrals; float64 results land well inside 5e-14.
const relTol = 5e-14

// TestRC_Fixtures checks RC against high-precision reference values on
// both the circular (y > x) and hyperbolic (y < x) branches.
func TestRC_Fixtures(t *testing.T) {
	cases := []struct {
		name    string
		x, y    float64
		want    float64
	}{
		{"circular y>x", 1, 2, 7.85398163397448309616e-1},
		{"hyperbolic y<x", 3, 1, 8.10496989476753745102e-1},
		{"log1p branch y/x>1/2", 0.98, 1, 1.00336369541002124913},
		{"direct log branch", 1, 0.4, 1.33194290062992538340},
	}
	for _, tc := range cases {
		got, err := carlson.RC(tc.x, tc.y)
		assert.NoError(t, err, tc.name)
		assert.InEpsilon(t, tc.want, got, relTol, tc.name)
	}
}

// TestRC_ClosedForms verifies the exact elementary special cases:
// RC(0,y) = (π/2)/√y and RC(x,x) = 1/√x, bit for bit.
func TestRC_ClosedForms(t *testing.T) {
	got, err := carlson.RC(0, 0.25)
	assert.NoError(t, err)
	assert.Equal(t, math.Pi, got, "RC(0,1/4) must be exactly π")

	got, err = carlson.RC(4, 4)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, got, "RC(4,4) must be exactly 1/2")
}

// TestRC_PrincipalValue checks the Cauchy principal value for y < 0
// against reference values, and its consistency with the positive-y
// continuation identity RC(x,y) = √(x/(x-y))·RC(x-y,-y).
func TestRC_PrincipalValue(t *testing.T) {
	got, err := carlson.RC(0.25, -2)
	assert.NoError(t, err)
	assert.InEpsilon(t, 2.31049060186648436472e-1, got, relTol)

	got, err = carlson.RC(3.1, -0.9)
	assert.NoError(t, err)
	assert.InEpsilon(t, 6.88640249155076781581e-1, got, relTol)

	// The continuation must agree exactly with its own expansion.
	x, y := 0.25, -2.0
	direct := carlson.RCUnchecked(x, y)
	expanded := math.Sqrt(x/(x-y)) * carlson.RCUnchecked(x-y, -y)
	assert.Equal(t, expanded, direct, "principal value must match its continuation identity")
}

// TestRC_Homogeneity checks RC(kx,ky) = RC(x,y)/√k for a power-of-two
// k, where the identity holds without rounding.
func TestRC_Homogeneity(t *testing.T) {
	base := carlson.RCUnchecked(1, 2)
	assert.Equal(t, base/2, carlson.RCUnchecked(4, 8), "RC(4x,4y) must be exactly RC(x,y)/2")

	base = carlson.RCUnchecked(3, 1)
	assert.Equal(t, base/2, carlson.RCUnchecked(12, 4), "hyperbolic branch scales identically")
}

// TestRC_DomainErrors exercises every sentinel of the checked entry.
func TestRC_DomainErrors(t *testing.T) {
	_, err := carlson.RC(math.NaN(), 1)
	assert.ErrorIs(t, err, carlson.ErrNaNArgument, "NaN x must error")

	_, err = carlson.RC(1, math.NaN())
	assert.ErrorIs(t, err, carlson.ErrNaNArgument, "NaN y must error")

	_, err = carlson.RC(-1, 2)
	assert.ErrorIs(t, err, carlson.ErrNegativeArgument, "negative x must error")

	_, err = carlson.RC(1, 0)
	assert.ErrorIs(t, err, carlson.ErrZeroArgument, "zero y must error")
}

// TestRC_Unchecked verifies the unchecked twin matches the checked
// entry on valid input.
func TestRC_Unchecked(t *testing.T) {
	want, err := carlson.RC(3, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, carlson.RCUnchecked(3, 1), "checked and unchecked must agree bit for bit")
}
