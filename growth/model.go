package growth

import (
	"fmt"
	"math"

	"github.com/san-kum/growthmod/optimize"
)

// Bounds is a per-parameter box constraint consumed by the optimizer.
type Bounds struct {
	Lower float64
	Upper float64
}

// Unbounded returns a (-Inf, +Inf) bound pair.
func Unbounded() Bounds {
	return Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Model is the contract shared by every growth variant.
type Model interface {
	// Signature returns the ordered parameter names fixed at construction.
	Signature() []string
	// Params returns a copy of the current parameter values.
	Params() map[string]float64
	// SetParams replaces all parameter values; keys must match the signature.
	SetParams(params map[string]float64) error
	// Bounds returns the per-parameter box constraints in signature order.
	Bounds() []Bounds
	// ComputeY evaluates the forward law at t. A nil params slice uses the
	// stored parameters; a non-nil slice must supply every parameter in
	// signature order.
	ComputeY(t []float64, params []float64) ([]float64, error)
	// Fit runs bounded nonlinear least squares against observed data and,
	// on success, replaces the stored parameters with the fitted values.
	// A nil p0 starts from the stored parameters.
	Fit(t, y []float64, p0 []float64) error
}

// Inverter is the optional inverse-evaluation capability (response → time).
// Variants without an analytic inverse simply do not implement it.
type Inverter interface {
	ComputeT(y []float64, params []float64) ([]float64, error)
}

// InitialValueModel is implemented by variants whose forward law depends on
// the response value at time zero, which is an external input rather than a
// fitted parameter.
type InitialValueModel interface {
	Model
	SetInitialResponse(y0 float64)
	InitialResponse() (float64, bool)
}

type evalFunc func(t []float64, p []float64) ([]float64, error)

// base carries the state and behavior shared by all variants: the ordered
// signature, the parameter map, bounds, and the generic fit procedure.
type base struct {
	sig    []string
	params map[string]float64
	bounds []Bounds
	eval   evalFunc
	report *optimize.Result
}

func newBase(sig []string, params map[string]float64, bounds []Bounds) (base, error) {
	if err := checkSignature(sig, params); err != nil {
		return base{}, err
	}
	if len(bounds) == 0 {
		bounds = make([]Bounds, len(sig))
		for i := range bounds {
			bounds[i] = Unbounded()
		}
	}
	if len(bounds) != len(sig) {
		return base{}, fmt.Errorf("%w: %d bounds for %d parameters", ErrBoundsCount, len(bounds), len(sig))
	}
	p := make(map[string]float64, len(params))
	for k, v := range params {
		p[k] = v
	}
	b := make([]Bounds, len(bounds))
	copy(b, bounds)
	return base{sig: sig, params: p, bounds: b}, nil
}

func checkSignature(sig []string, params map[string]float64) error {
	if len(params) != len(sig) {
		return fmt.Errorf("%w: got %d parameters, want %d", ErrSignatureMismatch, len(params), len(sig))
	}
	for _, name := range sig {
		if _, ok := params[name]; !ok {
			return fmt.Errorf("%w: missing %q", ErrSignatureMismatch, name)
		}
	}
	return nil
}

func (b *base) Signature() []string {
	out := make([]string, len(b.sig))
	copy(out, b.sig)
	return out
}

func (b *base) Params() map[string]float64 {
	out := make(map[string]float64, len(b.params))
	for k, v := range b.params {
		out[k] = v
	}
	return out
}

func (b *base) SetParams(params map[string]float64) error {
	if err := checkSignature(b.sig, params); err != nil {
		return err
	}
	for k, v := range params {
		b.params[k] = v
	}
	return nil
}

// SetParam sets a single parameter value.
func (b *base) SetParam(name string, value float64) error {
	if _, ok := b.params[name]; !ok {
		return fmt.Errorf("%w: unknown parameter %q", ErrSignatureMismatch, name)
	}
	b.params[name] = value
	return nil
}

func (b *base) Bounds() []Bounds {
	out := make([]Bounds, len(b.bounds))
	copy(out, b.bounds)
	return out
}

// FitReport returns the diagnostics of the most recent successful fit, or
// nil if the model has not been fit.
func (b *base) FitReport() *optimize.Result {
	return b.report
}

// resolve applies the override-or-default rule: a non-empty override must
// cover the full signature; otherwise the stored parameters are re-validated
// and returned in signature order.
func (b *base) resolve(override []float64) ([]float64, error) {
	if len(override) > 0 {
		if len(override) != len(b.sig) {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrParamCount, len(override), len(b.sig))
		}
		out := make([]float64, len(override))
		copy(out, override)
		return out, nil
	}
	if err := checkSignature(b.sig, b.params); err != nil {
		return nil, err
	}
	out := make([]float64, len(b.sig))
	for i, name := range b.sig {
		out[i] = b.params[name]
	}
	return out, nil
}

func (b *base) ComputeY(t []float64, params []float64) ([]float64, error) {
	p, err := b.resolve(params)
	if err != nil {
		return nil, err
	}
	return b.eval(t, p)
}

func (b *base) Fit(t, y []float64, p0 []float64) error {
	if len(t) != len(y) {
		return fmt.Errorf("%w: len(t)=%d len(y)=%d", ErrLengthMismatch, len(t), len(y))
	}
	start, err := b.resolve(p0)
	if err != nil {
		return err
	}
	lower := make([]float64, len(b.bounds))
	upper := make([]float64, len(b.bounds))
	for i, bd := range b.bounds {
		lower[i] = bd.Lower
		upper[i] = bd.Upper
	}
	res, err := optimize.LeastSquares(optimize.ModelFunc(b.eval), t, y, start, lower, upper, nil)
	if err != nil {
		return err
	}
	// Replace all values only after a successful fit.
	for i, name := range b.sig {
		b.params[name] = res.Params[i]
	}
	b.report = res
	return nil
}

// initialValue holds the explicit optional response-at-zero state shared by
// initial-value variants.
type initialValue struct {
	y0    float64
	y0Set bool
}

func (v *initialValue) SetInitialResponse(y0 float64) {
	v.y0 = y0
	v.y0Set = true
}

func (v *initialValue) InitialResponse() (float64, bool) {
	return v.y0, v.y0Set
}

func (v *initialValue) require() (float64, error) {
	if !v.y0Set {
		return 0, ErrInitialResponseUnset
	}
	return v.y0, nil
}
