package growth

import (
	"github.com/san-kum/growthmod/integrate"
)

// LogisticSigmoid is the generalized logistic sigmoid growth law (Birch 1999),
// defined only by its differential equation
//
//	dy/dt = a·y·(K-y) / (K - y + c·y)
//
// with rate a > 0, asymmetry shape c and upper asymptote K. There is no
// closed form for y(t); forward evaluation integrates the equation from the
// externally supplied response at time zero, which must be set before any
// evaluation. At c = 1 the equation reduces to ordinary logistic growth.
//
// Evaluation times must satisfy t >= 0; t = 0 reproduces the initial
// response within solver tolerance.
type LogisticSigmoid struct {
	base
	initialValue
}

var logisticSigmoidSignature = []string{"a", "c", "K"}

// NewLogisticSigmoid creates a logistic sigmoid growth model.
func NewLogisticSigmoid(params map[string]float64, bounds []Bounds) (*LogisticSigmoid, error) {
	b, err := newBase(logisticSigmoidSignature, params, bounds)
	if err != nil {
		return nil, err
	}
	m := &LogisticSigmoid{base: b}
	m.eval = m.forward
	return m, nil
}

func (m *LogisticSigmoid) forward(t []float64, p []float64) ([]float64, error) {
	y0, err := m.require()
	if err != nil {
		return nil, err
	}
	a, c, k := p[0], p[1], p[2]

	rhs := func(_ float64, y []float64) []float64 {
		v := y[0]
		return []float64{a * v * (k - v) / (k - v + c*v)}
	}

	end := 0.0
	for _, ti := range t {
		if ti > end {
			end = ti
		}
	}
	sol, err := integrate.SolveIVP(rhs, [2]float64{0, end}, []float64{y0}, t, nil)
	if err != nil {
		return nil, err
	}
	return sol.Component(0), nil
}
