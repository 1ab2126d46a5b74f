package batch

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ellint/carlson"
)

// RF maps carlson.RF over equal-length slices, elementwise.
// Returns the positional results; in checked mode the first domain or
// convergence error aborts the batch, wrapped with its index.
func RF(xs, ys, zs []float64, opts *Options) ([]float64, error) {
	if err := sameLen(len(xs), len(ys), len(zs)); err != nil {
		return nil, err
	}

	return run(len(xs), opts, func(i int) (float64, error) {
		return carlson.RF(xs[i], ys[i], zs[i])
	}, func(i int) float64 {
		return carlson.RFUnchecked(xs[i], ys[i], zs[i])
	})
}

// RD maps carlson.RD over equal-length slices, elementwise.
func RD(xs, ys, zs []float64, opts *Options) ([]float64, error) {
	if err := sameLen(len(xs), len(ys), len(zs)); err != nil {
		return nil, err
	}

	return run(len(xs), opts, func(i int) (float64, error) {
		return carlson.RD(xs[i], ys[i], zs[i])
	}, func(i int) float64 {
		return carlson.RDUnchecked(xs[i], ys[i], zs[i])
	})
}

// RJ maps carlson.RJ over equal-length slices, elementwise.
func RJ(xs, ys, zs, ps []float64, opts *Options) ([]float64, error) {
	if err := sameLen(len(xs), len(ys), len(zs), len(ps)); err != nil {
		return nil, err
	}

	return run(len(xs), opts, func(i int) (float64, error) {
		return carlson.RJ(xs[i], ys[i], zs[i], ps[i])
	}, func(i int) float64 {
		return carlson.RJUnchecked(xs[i], ys[i], zs[i], ps[i])
	})
}

// RC maps carlson.RC over equal-length slices, elementwise.
func RC(xs, ys []float64, opts *Options) ([]float64, error) {
	if err := sameLen(len(xs), len(ys)); err != nil {
		return nil, err
	}

	return run(len(xs), opts, func(i int) (float64, error) {
		return carlson.RC(xs[i], ys[i])
	}, func(i int) float64 {
		return carlson.RCUnchecked(xs[i], ys[i])
	})
}

// RG maps carlson.RG over equal-length slices, elementwise.
func RG(xs, ys, zs []float64, opts *Options) ([]float64, error) {
	if err := sameLen(len(xs), len(ys), len(zs)); err != nil {
		return nil, err
	}

	return run(len(xs), opts, func(i int) (float64, error) {
		return carlson.RG(xs[i], ys[i], zs[i])
	}, func(i int) float64 {
		return carlson.RGUnchecked(xs[i], ys[i], zs[i])
	})
}

// sameLen verifies all slice lengths match the first.
func sameLen(n int, rest ...int) error {
	for _, m := range rest {
		if m != n {
			return ErrLengthMismatch
		}
	}

	return nil
}

// run executes n independent evaluations, sequentially below the
// parallel threshold and over errgroup-managed contiguous chunks above
// it. Outputs are positional regardless of strategy.
func run(n int, opts *Options, checked func(int) (float64, error), unchecked func(int) float64) ([]float64, error) {
	threshold := DefaultParallelThreshold
	workers := runtime.GOMAXPROCS(0)
	uncheckedMode := false
	if opts != nil {
		if opts.ParallelThreshold < 0 || opts.Workers < 0 {
			return nil, ErrBadOptions
		}
		if opts.ParallelThreshold > 0 {
			threshold = opts.ParallelThreshold
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		uncheckedMode = opts.Unchecked
	}

	out := make([]float64, n)
	if n < threshold || workers <= 1 {
		if err := fill(out, 0, n, uncheckedMode, checked, unchecked); err != nil {
			return nil, err
		}

		return out, nil
	}

	// Contiguous chunks keep memory access streaming and error indexes
	// deterministic within each chunk.
	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			return fill(out, lo, hi, uncheckedMode, checked, unchecked)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// fill evaluates indexes [lo,hi) into out.
func fill(out []float64, lo, hi int, uncheckedMode bool, checked func(int) (float64, error), unchecked func(int) float64) error {
	if uncheckedMode {
		for i := lo; i < hi; i++ {
			out[i] = unchecked(i)
		}

		return nil
	}
	for i := lo; i < hi; i++ {
		v, err := checked(i)
		if err != nil {
			// Wrap with the offending index; errors.Is still matches
			// the carlson sentinel.
			return fmt.Errorf("batch: index %d: %w", i, err)
		}
		out[i] = v
	}

	return nil
}
