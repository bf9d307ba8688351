package growth

import "math"

// Richards is the flexible asymmetric growth law
//
//	y(t) = K·(1 + exp(d - a·b·t))^(-1/b)
//
// the closed-form solution of dy/dt = a·y·(1 - (y/K)^b) for a > 0, b > 0.
// The shape parameter b skews the curve around its inflection; the offset d
// shifts the time at which y = K/2. At b = 1 the law reduces to the logistic
// with t_0 = d/a. The formula is singular as b → 0; keep b bounded away
// from zero.
type Richards struct {
	base
}

var richardsSignature = []string{"a", "b", "d", "K"}

// NewRichards creates a Richards growth model from initial parameter values
// and per-parameter bounds.
func NewRichards(params map[string]float64, bounds []Bounds) (*Richards, error) {
	b, err := newBase(richardsSignature, params, bounds)
	if err != nil {
		return nil, err
	}
	m := &Richards{base: b}
	m.eval = m.forward
	return m, nil
}

func (m *Richards) forward(t []float64, p []float64) ([]float64, error) {
	a, b, d, k := p[0], p[1], p[2], p[3]
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = k * math.Pow(1+math.Exp(d-a*b*ti), -1/b)
	}
	return y, nil
}
