// Package growth provides parameterized growth-curve models that can be
// fit to observed (t, y) data by bounded nonlinear least squares.
//
// Each variant fixes an ordered parameter signature and a forward law
// mapping time to response:
//
//   - [Exponential]: y = y0·exp(a·t)
//   - [ExponentialGeneralized]: sub-exponential power-law growth
//   - [Logistic]: standard sigmoid with asymptote K
//   - [Richards]: asymmetric sigmoid, reduces to Logistic at b = 1
//   - [LogisticSigmoid]: ODE-defined asymmetric sigmoid, evaluated by
//     numerical integration
//
// Variants with an analytic inverse implement [Inverter]; variants that
// grow from an externally supplied response at time zero implement
// [InitialValueModel]. Query either capability with a type assertion:
//
//	m, _ := growth.NewLogistic(params, bounds)
//	if inv, ok := growth.Model(m).(growth.Inverter); ok {
//	    t, _ := inv.ComputeT(y, nil)
//	}
//
// Models are not safe for concurrent use; callers must serialize access
// to a single instance.
package growth
