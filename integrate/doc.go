// Package integrate solves initial-value problems for ordinary differential
// equations with dense output at arbitrary evaluation points.
//
// The default method is the adaptive Dormand-Prince RK45 pair; a fixed-step
// classic RK4 is available through [Options.Method]. Requested evaluation
// points need not be sorted or evenly spaced, but must lie inside the
// integration span:
//
//	rhs := func(t float64, y []float64) []float64 {
//	    return []float64{y[0] * (1 - y[0]/100)}
//	}
//	sol, err := integrate.SolveIVP(rhs, [2]float64{0, 20}, []float64{1}, tEval, nil)
package integrate
