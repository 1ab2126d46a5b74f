package batch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ellint/batch"
	"github.com/katalvlaran/ellint/carlson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTriples builds n argument triples spread across a few orders of
// magnitude, deterministic so sequential/parallel runs can be compared.
func makeTriples(n int) (xs, ys, zs []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	zs = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = 0.5 + float64(i%7)
		ys[i] = 1.0 + float64(i%13)*0.25
		zs[i] = 2.0 + float64(i%31)*0.125
	}

	return xs, ys, zs
}

// TestRF_PositionalParity verifies the batch output matches the scalar
// entry point element by element, bit for bit.
func TestRF_PositionalParity(t *testing.T) {
	xs, ys, zs := makeTriples(100)

	out, err := batch.RF(xs, ys, zs, nil)
	require.NoError(t, err)
	require.Len(t, out, 100)

	for i := range out {
		want, err := carlson.RF(xs[i], ys[i], zs[i])
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "index %d must match the scalar result", i)
	}
}

// TestSequentialParallelAgree verifies the parallel fan-out produces
// the identical output slice as the sequential path: evaluations are
// independent, so the strategy must be unobservable.
func TestSequentialParallelAgree(t *testing.T) {
	xs, ys, zs := makeTriples(5000)

	seq, err := batch.RF(xs, ys, zs, &batch.Options{ParallelThreshold: 10000})
	require.NoError(t, err)

	par, err := batch.RF(xs, ys, zs, &batch.Options{ParallelThreshold: 1, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, seq, par, "parallel and sequential outputs must be bit-identical")
}

// TestRJ_Batch exercises the four-slice variant, including a
// principal-value parameter in the middle of the batch.
func TestRJ_Batch(t *testing.T) {
	xs := []float64{2, 2, 0}
	ys := []float64{3, 3, 2}
	zs := []float64{4, 4, 3}
	ps := []float64{5, -0.5, -1.5}

	out, err := batch.RJ(xs, ys, zs, ps, nil)
	require.NoError(t, err)

	for i := range out {
		want, err := carlson.RJ(xs[i], ys[i], zs[i], ps[i])
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "index %d", i)
	}
}

// TestRC_RG_RD_Batch covers the remaining variants on short inputs.
func TestRC_RG_RD_Batch(t *testing.T) {
	out, err := batch.RC([]float64{1, 3, 0.25}, []float64{2, 1, -2}, nil)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = batch.RG([]float64{0, 1, 2}, []float64{0.0796, 2, 3}, []float64{4, 3, 4}, nil)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = batch.RD([]float64{0, 1, 2}, []float64{2, 2, 3}, []float64{1, 3, 4}, nil)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// TestCheckedError verifies the first invalid element aborts the batch
// with its index in the message and the carlson sentinel wrapped.
func TestCheckedError(t *testing.T) {
	xs := []float64{1, -1, 2}
	ys := []float64{2, 2, 3}
	zs := []float64{3, 3, 4}

	out, err := batch.RF(xs, ys, zs, nil)
	assert.Nil(t, out, "a failed batch must not return partial output")
	assert.ErrorIs(t, err, carlson.ErrNegativeArgument, "the sentinel must survive wrapping")
	assert.ErrorContains(t, err, "index 1", "the offending index must be reported")
}

// TestUncheckedMode verifies invalid elements surface as NaN instead
// of aborting when Unchecked is set.
func TestUncheckedMode(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Unchecked = true

	out, err := batch.RF([]float64{1, -1, 2}, []float64{2, 2, 3}, []float64{3, 3, 4}, &opts)
	require.NoError(t, err, "unchecked mode never errors")
	require.Len(t, out, 3)

	assert.False(t, math.IsNaN(out[0]), "valid element must evaluate")
	assert.True(t, math.IsNaN(out[1]), "invalid element must surface as NaN")
	assert.False(t, math.IsNaN(out[2]), "elements after the bad one must still evaluate")
}

// TestLengthMismatch verifies unequal slice lengths are rejected up
// front for every variant.
func TestLengthMismatch(t *testing.T) {
	_, err := batch.RF([]float64{1}, []float64{2, 3}, []float64{3}, nil)
	assert.ErrorIs(t, err, batch.ErrLengthMismatch, "RF")

	_, err = batch.RC([]float64{1, 2}, []float64{2}, nil)
	assert.ErrorIs(t, err, batch.ErrLengthMismatch, "RC")

	_, err = batch.RJ([]float64{1}, []float64{2}, []float64{3}, nil, nil)
	assert.ErrorIs(t, err, batch.ErrLengthMismatch, "RJ")
}

// TestBadOptions verifies negative option fields are rejected.
func TestBadOptions(t *testing.T) {
	_, err := batch.RF([]float64{1}, []float64{2}, []float64{3},
		&batch.Options{ParallelThreshold: -1})
	assert.ErrorIs(t, err, batch.ErrBadOptions, "negative threshold")

	_, err = batch.RF([]float64{1}, []float64{2}, []float64{3},
		&batch.Options{Workers: -2})
	assert.ErrorIs(t, err, batch.ErrBadOptions, "negative workers")
}

// TestEmptyInput verifies a zero-length batch succeeds with an empty
// output slice.
func TestEmptyInput(t *testing.T) {
	out, err := batch.RF(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out, "empty input yields empty output")
}
