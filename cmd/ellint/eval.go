package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ellint/bulirsch"
	"github.com/katalvlaran/ellint/carlson"
	"github.com/katalvlaran/ellint/legendre"
)

// evaluator binds a function name to its arity and implementation.
type evaluator struct {
	arity int
	eval  func(a []float64) (float64, error)
}

// evaluators routes eval/batch function names. Carlson names are the
// engine itself; the rest are the wrapper layers.
var evaluators = map[string]evaluator{
	"rf": {3, func(a []float64) (float64, error) { return carlson.RF(a[0], a[1], a[2]) }},
	"rd": {3, func(a []float64) (float64, error) { return carlson.RD(a[0], a[1], a[2]) }},
	"rg": {3, func(a []float64) (float64, error) { return carlson.RG(a[0], a[1], a[2]) }},
	"rj": {4, func(a []float64) (float64, error) { return carlson.RJ(a[0], a[1], a[2], a[3]) }},
	"rc": {2, func(a []float64) (float64, error) { return carlson.RC(a[0], a[1]) }},

	"k":       {1, func(a []float64) (float64, error) { return legendre.K(a[0]) }},
	"e":       {1, func(a []float64) (float64, error) { return legendre.E(a[0]) }},
	"d":       {1, func(a []float64) (float64, error) { return legendre.D(a[0]) }},
	"pi":      {2, func(a []float64) (float64, error) { return legendre.Pi(a[0], a[1]) }},
	"f":       {2, func(a []float64) (float64, error) { return legendre.F(a[0], a[1]) }},
	"einc":    {2, func(a []float64) (float64, error) { return legendre.EInc(a[0], a[1]) }},
	"piinc":   {3, func(a []float64) (float64, error) { return legendre.PiInc(a[0], a[1], a[2]) }},
	"dinc":    {2, func(a []float64) (float64, error) { return legendre.DInc(a[0], a[1]) }},
	"zeta":    {2, func(a []float64) (float64, error) { return legendre.Zeta(a[0], a[1]) }},
	"lambda0": {2, func(a []float64) (float64, error) { return legendre.Lambda0(a[0], a[1]) }},

	"cel": {4, func(a []float64) (float64, error) { return bulirsch.Cel(a[0], a[1], a[2], a[3]) }},
	"el1": {2, func(a []float64) (float64, error) { return bulirsch.El1(a[0], a[1]) }},
	"el2": {4, func(a []float64) (float64, error) { return bulirsch.El2(a[0], a[1], a[2], a[3]) }},
	"el3": {3, func(a []float64) (float64, error) { return bulirsch.El3(a[0], a[1], a[2]) }},
}

// evalCmd computes a single integral from positional arguments.
var evalCmd = &cobra.Command{
	Use:   "eval <func> <args...>",
	Short: "Evaluate one elliptic integral",
	Long: `Evaluate one integral by name. Carlson: rf, rd, rj, rc, rg.
Legendre: k, e, d, pi, f, einc, piinc, dinc, zeta, lambda0.
Bulirsch: cel, el1, el2, el3.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.ToLower(args[0])
		ev, ok := evaluators[name]
		if !ok {
			return fmt.Errorf("unknown function %q", args[0])
		}
		if len(args)-1 != ev.arity {
			return fmt.Errorf("%s takes %d arguments, got %d", name, ev.arity, len(args)-1)
		}
		vals := make([]float64, ev.arity)
		for i, raw := range args[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			vals[i] = v
		}

		start := time.Now()
		out, err := ev.eval(vals)
		if err != nil {
			return err
		}
		logger.Debug("evaluated",
			zap.String("func", name),
			zap.Float64s("args", vals),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%.17g\n", out)

		return nil
	},
}
