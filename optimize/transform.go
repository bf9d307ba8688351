package optimize

import (
	"fmt"
	"math"
)

// transform maps parameters between the bounded (external) space the model
// sees and the unbounded (internal) space the optimizer works in, using the
// classic MINUIT variable transforms: sin for two-sided bounds, a sqrt shift
// for one-sided bounds, identity when unconstrained.
type transform struct {
	lower, upper []float64
}

func newTransform(lower, upper []float64, dim int) (*transform, error) {
	if len(lower) != dim || len(upper) != dim {
		return nil, fmt.Errorf("%w: %d/%d bounds for %d parameters", ErrDimension, len(lower), len(upper), dim)
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("%w: parameter %d: [%g, %g]", ErrBadBounds, i, lower[i], upper[i])
		}
	}
	return &transform{lower: lower, upper: upper}, nil
}

// internal maps a bounded parameter vector into optimizer space, rejecting
// values outside their bounds.
func (tr *transform) internal(p []float64) ([]float64, error) {
	z := make([]float64, len(p))
	for i, v := range p {
		lo, hi := tr.lower[i], tr.upper[i]
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: parameter %d: %g not in [%g, %g]", ErrInfeasible, i, v, lo, hi)
		}
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			z[i] = v
		case math.IsInf(hi, 1):
			z[i] = math.Sqrt((v-lo+1)*(v-lo+1) - 1)
		case math.IsInf(lo, -1):
			z[i] = math.Sqrt((hi-v+1)*(hi-v+1) - 1)
		case hi == lo:
			z[i] = 0
		default:
			z[i] = math.Asin(2*(v-lo)/(hi-lo) - 1)
		}
	}
	return z, nil
}

// external maps optimizer space back into bounded parameters.
func (tr *transform) external(z []float64) []float64 {
	p := make([]float64, len(z))
	for i, v := range z {
		lo, hi := tr.lower[i], tr.upper[i]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			p[i] = v
		case math.IsInf(hi, 1):
			p[i] = lo - 1 + math.Sqrt(v*v+1)
		case math.IsInf(lo, -1):
			p[i] = hi + 1 - math.Sqrt(v*v+1)
		case hi == lo:
			p[i] = lo
		default:
			p[i] = lo + (hi-lo)*(math.Sin(v)+1)/2
		}
	}
	return p
}
