package integrate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// RHS is the right-hand side of an ODE system dy/dt = f(t, y).
type RHS func(t float64, y []float64) []float64

// Integration methods.
const (
	MethodRK45 = "rk45"
	MethodRK4  = "rk4"
)

// Options tunes the solver. Zero values select defaults.
type Options struct {
	Method   string  // MethodRK45 (default) or MethodRK4
	Tol      float64 // local error tolerance for rk45, default 1e-8
	MaxSteps int     // step limit, default 100000
	MinStep  float64 // smallest allowed adaptive step, default 1e-12
	Step     float64 // fixed step for rk4, default span/1000
}

// Solution holds the state evaluated at the requested points, aligned
// positionally with the tEval argument of [SolveIVP].
type Solution struct {
	T []float64
	Y [][]float64
}

// Component returns the i-th state component at every evaluation point.
func (s *Solution) Component(i int) []float64 {
	out := make([]float64, len(s.Y))
	for j, y := range s.Y {
		out[j] = y[i]
	}
	return out
}

// Solver errors.
var (
	ErrBadSpan       = errors.New("integrate: span end before start")
	ErrEvalOutOfSpan = errors.New("integrate: evaluation point outside integration span")
	ErrStepTooSmall  = errors.New("integrate: adaptive step below minimum (stiff or singular right-hand side)")
	ErrUnstable      = errors.New("integrate: state diverged (NaN or Inf)")
	ErrTooManySteps  = errors.New("integrate: step limit exceeded")
)

// SolveIVP integrates the initial-value problem dy/dt = f(t, y), y(span[0]) = y0
// over span and returns the state at every point of tEval. Evaluation points
// may be unsorted and unevenly spaced but must lie within the span; values
// between internal steps come from cubic Hermite interpolation.
func SolveIVP(f RHS, span [2]float64, y0 []float64, tEval []float64, opts *Options) (*Solution, error) {
	t0, t1 := span[0], span[1]
	if t1 < t0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadSpan, t0, t1)
	}
	for _, te := range tEval {
		if te < t0 || te > t1 {
			return nil, fmt.Errorf("%w: t=%g not in [%g, %g]", ErrEvalOutOfSpan, te, t0, t1)
		}
	}
	o := withDefaults(opts, t1-t0)

	order := make([]int, len(tEval))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return tEval[order[i]] < tEval[order[j]] })

	out := make([][]float64, len(tEval))
	y := cloneState(y0)
	next := 0
	for next < len(order) && tEval[order[next]] <= t0 {
		out[order[next]] = cloneState(y)
		next++
	}
	if next == len(order) {
		return &Solution{T: cloneState(tEval), Y: out}, nil
	}

	var err error
	switch o.Method {
	case MethodRK4:
		err = solveFixed(f, t0, t1, y, tEval, order, out, next, o)
	case MethodRK45:
		err = solveAdaptive(f, t0, t1, y, tEval, order, out, next, o)
	default:
		return nil, fmt.Errorf("integrate: unknown method: %s", o.Method)
	}
	if err != nil {
		return nil, err
	}
	return &Solution{T: cloneState(tEval), Y: out}, nil
}

func withDefaults(opts *Options, width float64) Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Method == "" {
		o.Method = MethodRK45
	}
	if o.Tol <= 0 {
		o.Tol = 1e-8
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 100000
	}
	if o.MinStep <= 0 {
		o.MinStep = 1e-12
	}
	if o.Step <= 0 {
		o.Step = width / 1000
	}
	return o
}

func solveAdaptive(f RHS, t, t1 float64, y []float64, tEval []float64, order []int, out [][]float64, next int, o Options) error {
	dt := (t1 - t) / 100
	steps := 0
	for t < t1 {
		if steps >= o.MaxSteps {
			return ErrTooManySteps
		}
		steps++

		if t+dt > t1 {
			dt = t1 - t
		}
		yNew, k1, k7, errRatio := rk45Step(f, t, y, dt, o.Tol)
		if errRatio > 1 {
			dt *= math.Max(minScale, safety*math.Pow(errRatio, -0.25))
			if dt < o.MinStep {
				return ErrStepTooSmall
			}
			continue
		}
		if !validState(yNew) {
			return ErrUnstable
		}

		tNew := t + dt
		for next < len(order) && tEval[order[next]] <= tNew {
			idx := order[next]
			out[idx] = hermite(t, y, k1, tNew, yNew, k7, tEval[idx])
			next++
		}
		if next == len(order) {
			return nil
		}

		t = tNew
		y = yNew
		if errRatio > 0 {
			dt *= math.Min(maxScale, safety*math.Pow(errRatio, -0.2))
		} else {
			dt *= maxScale
		}
	}
	return nil
}

func solveFixed(f RHS, t, t1 float64, y []float64, tEval []float64, order []int, out [][]float64, next int, o Options) error {
	var stepper rk4
	steps := 0
	for t < t1 {
		if steps >= o.MaxSteps {
			return ErrTooManySteps
		}
		steps++

		dt := o.Step
		if t+dt > t1 {
			dt = t1 - t
		}
		k1 := cloneState(f(t, y))
		yNew := stepper.step(f, t, y, dt)
		if !validState(yNew) {
			return ErrUnstable
		}
		tNew := t + dt
		k7 := f(tNew, yNew)

		for next < len(order) && tEval[order[next]] <= tNew {
			idx := order[next]
			out[idx] = hermite(t, y, k1, tNew, yNew, k7, tEval[idx])
			next++
		}
		if next == len(order) {
			return nil
		}

		t = tNew
		y = yNew
	}
	return nil
}

// hermite interpolates the state at te inside an accepted step using the
// endpoint values and derivatives.
func hermite(t0 float64, y0, f0 []float64, t1 float64, y1, f1 []float64, te float64) []float64 {
	h := t1 - t0
	if h == 0 {
		return cloneState(y1)
	}
	s := (te - t0) / h
	h00 := (1 + 2*s) * (1 - s) * (1 - s)
	h10 := s * (1 - s) * (1 - s)
	h01 := s * s * (3 - 2*s)
	h11 := s * s * (s - 1)

	out := make([]float64, len(y0))
	for i := range out {
		out[i] = h00*y0[i] + h10*h*f0[i] + h01*y1[i] + h11*h*f1[i]
	}
	return out
}

func cloneState(y []float64) []float64 {
	c := make([]float64, len(y))
	copy(c, y)
	return c
}

func validState(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
