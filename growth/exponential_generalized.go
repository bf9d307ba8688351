package growth

import "math"

// ExponentialGeneralized is the generalized exponential growth law
//
//	y(t) = ((1-p)·a·t + y0^(1-p))^(1/(1-p))
//
// with rate a > 0 and shape p < 1 allowing sub-exponential growth. The
// response at time zero is an external input that must be set before any
// evaluation. The law is singular at p = 1; keep p bounded below 1.
type ExponentialGeneralized struct {
	base
	initialValue
}

var exponentialGeneralizedSignature = []string{"a", "p"}

// NewExponentialGeneralized creates a generalized exponential growth model.
func NewExponentialGeneralized(params map[string]float64, bounds []Bounds) (*ExponentialGeneralized, error) {
	b, err := newBase(exponentialGeneralizedSignature, params, bounds)
	if err != nil {
		return nil, err
	}
	m := &ExponentialGeneralized{base: b}
	m.eval = m.forward
	return m, nil
}

func (m *ExponentialGeneralized) forward(t []float64, p []float64) ([]float64, error) {
	y0, err := m.require()
	if err != nil {
		return nil, err
	}
	a, shape := p[0], p[1]
	q := 1 - shape
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = math.Pow(q*a*ti+math.Pow(y0, q), 1/q)
	}
	return y, nil
}
