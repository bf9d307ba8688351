package growth

import "math"

// Exponential is plain exponential growth y(t) = y0·exp(a·t) with rate a.
// The response at time zero is an external input, not a fitted parameter;
// it must be set with SetInitialResponse before any evaluation.
type Exponential struct {
	base
	initialValue
}

var exponentialSignature = []string{"a"}

// NewExponential creates an exponential growth model.
func NewExponential(params map[string]float64, bounds []Bounds) (*Exponential, error) {
	b, err := newBase(exponentialSignature, params, bounds)
	if err != nil {
		return nil, err
	}
	m := &Exponential{base: b}
	m.eval = m.forward
	return m, nil
}

func (m *Exponential) forward(t []float64, p []float64) ([]float64, error) {
	y0, err := m.require()
	if err != nil {
		return nil, err
	}
	a := p[0]
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = y0 * math.Exp(a*ti)
	}
	return y, nil
}

// ComputeT inverts exponential growth: t = ln(y/y0)/a.
func (m *Exponential) ComputeT(y []float64, params []float64) ([]float64, error) {
	y0, err := m.require()
	if err != nil {
		return nil, err
	}
	p, err := m.resolve(params)
	if err != nil {
		return nil, err
	}
	a := p[0]
	t := make([]float64, len(y))
	for i, yi := range y {
		t[i] = math.Log(yi/y0) / a
	}
	return t, nil
}
