package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds fitted parameters with goodness-of-fit diagnostics.
type Result struct {
	// Params are the fitted parameter values.
	Params []float64
	// Residuals are fitted minus observed responses.
	Residuals []float64
	// RMSE is the root mean square error.
	RMSE float64
	// RSquared is the coefficient of determination (1 for a perfect fit).
	RSquared float64
	// Covariance estimates the parameter covariance as s²·(JᵀJ)⁻¹, or nil
	// when it cannot be estimated (no residual degrees of freedom, singular
	// Jacobian).
	Covariance *mat.Dense
}

func newResult(fn ModelFunc, t, y, params, fitted []float64) *Result {
	m := len(y)
	residuals := make([]float64, m)
	ssr := 0.0
	mean := 0.0
	for _, yi := range y {
		mean += yi
	}
	mean /= float64(m)
	sst := 0.0
	for i := range y {
		residuals[i] = fitted[i] - y[i]
		ssr += residuals[i] * residuals[i]
		d := y[i] - mean
		sst += d * d
	}

	rsq := 0.0
	if sst > 0 {
		rsq = 1 - ssr/sst
	}
	return &Result{
		Params:     params,
		Residuals:  residuals,
		RMSE:       math.Sqrt(ssr / float64(m)),
		RSquared:   rsq,
		Covariance: covariance(fn, t, params, ssr),
	}
}

// covariance estimates s²·(JᵀJ)⁻¹ with a forward-difference Jacobian at the
// fitted point.
func covariance(fn ModelFunc, t, params []float64, ssr float64) *mat.Dense {
	m, n := len(t), len(params)
	dof := m - n
	if dof <= 0 {
		return nil
	}
	base, err := fn(t, params)
	if err != nil {
		return nil
	}
	jac := mat.NewDense(m, n, nil)
	for j := 0; j < n; j++ {
		h := 1e-6 * math.Max(math.Abs(params[j]), 1)
		pp := make([]float64, n)
		copy(pp, params)
		pp[j] += h
		yp, err := fn(t, pp)
		if err != nil {
			return nil
		}
		for i := 0; i < m; i++ {
			jac.Set(i, j, (yp[i]-base[i])/h)
		}
	}

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil
	}
	inv.Scale(ssr/float64(dof), &inv)
	return &inv
}
