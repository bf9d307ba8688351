package optimize

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
)

// ModelFunc evaluates a model's forward law at t with the given parameter
// vector.
type ModelFunc func(t, params []float64) ([]float64, error)

// Options tunes the least-squares run. Zero values select defaults.
type Options struct {
	MaxIterations int     // default 200
	Tolerance     float64 // objective tolerance, default 1e-15
}

// Solver errors.
var (
	ErrDimension     = errors.New("optimize: dimension mismatch")
	ErrBadBounds     = errors.New("optimize: lower bound above upper bound")
	ErrInfeasible    = errors.New("optimize: initial guess outside bounds")
	ErrNoConvergence = errors.New("optimize: least-squares did not converge")
)

// residualPenalty replaces residuals when the model cannot be evaluated at a
// trial point, steering the optimizer away without aborting the run.
const residualPenalty = 1e12

// LeastSquares fits fn to the observations (t, y) by Levenberg-Marquardt,
// starting from p0 and honoring per-parameter box constraints (-Inf/+Inf
// meaning unconstrained). It returns the fitted parameters with
// goodness-of-fit diagnostics, or an error distinguishing infeasible input
// from failed convergence.
func LeastSquares(fn ModelFunc, t, y, p0, lower, upper []float64, opts *Options) (*Result, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: len(t)=%d len(y)=%d", ErrDimension, len(t), len(y))
	}
	n := len(p0)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty initial guess", ErrDimension)
	}
	if len(t) < n {
		return nil, fmt.Errorf("%w: %d observations for %d parameters", ErrDimension, len(t), n)
	}

	tr, err := newTransform(lower, upper, n)
	if err != nil {
		return nil, err
	}
	z0, err := tr.internal(p0)
	if err != nil {
		return nil, err
	}

	// Catch unevaluable starting points before any optimizer work.
	y0, err := fn(t, p0)
	if err != nil {
		return nil, err
	}
	if len(y0) != len(y) {
		return nil, fmt.Errorf("%w: model returned %d values for %d observations", ErrDimension, len(y0), len(y))
	}

	resid := func(dst, z []float64) {
		p := tr.external(z)
		yh, err := fn(t, p)
		if err != nil {
			for i := range dst {
				dst[i] = residualPenalty
			}
			return
		}
		for i := range dst {
			r := yh[i] - y[i]
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = residualPenalty
			}
			dst[i] = r
		}
	}

	maxIter := 200
	tol := 1e-15
	if opts != nil {
		if opts.MaxIterations > 0 {
			maxIter = opts.MaxIterations
		}
		if opts.Tolerance > 0 {
			tol = opts.Tolerance
		}
	}

	numJac := lm.NumJac{Func: resid}
	problem := lm.LMProblem{
		Dim:        n,
		Size:       len(t),
		Func:       resid,
		Jac:        numJac.Jac,
		InitParams: z0,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	out, err := lm.LM(problem, &lm.Settings{Iterations: maxIter, ObjectiveTol: tol})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	params := tr.external(out.X)
	for _, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite parameter", ErrNoConvergence)
		}
	}
	fitted, err := fn(t, params)
	if err != nil {
		return nil, err
	}
	return newResult(fn, t, y, params, fitted), nil
}
