package growth

import "math"

// Logistic is the standard sigmoid growth law
//
//	y(t) = K / (1 + exp(-a·(t - t_0)))
//
// with rate a > 0, inflection time t_0 (where y = K/2) and upper asymptote K.
type Logistic struct {
	base
}

var logisticSignature = []string{"a", "t_0", "K"}

// NewLogistic creates a logistic growth model from initial parameter values
// and per-parameter bounds. A nil bounds slice means all parameters are
// unconstrained.
func NewLogistic(params map[string]float64, bounds []Bounds) (*Logistic, error) {
	b, err := newBase(logisticSignature, params, bounds)
	if err != nil {
		return nil, err
	}
	m := &Logistic{base: b}
	m.eval = m.forward
	return m, nil
}

func (m *Logistic) forward(t []float64, p []float64) ([]float64, error) {
	a, t0, k := p[0], p[1], p[2]
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = k / (1 + math.Exp(-a*(ti-t0)))
	}
	return y, nil
}

// ComputeT inverts the logistic law: t = t_0 - ln(K/y - 1)/a. Responses
// outside (0, K) produce NaN.
func (m *Logistic) ComputeT(y []float64, params []float64) ([]float64, error) {
	p, err := m.resolve(params)
	if err != nil {
		return nil, err
	}
	a, t0, k := p[0], p[1], p[2]
	t := make([]float64, len(y))
	for i, yi := range y {
		t[i] = t0 - math.Log(k/yi-1)/a
	}
	return t, nil
}
