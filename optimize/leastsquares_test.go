package optimize

import (
	"errors"
	"math"
	"testing"
)

// expModel is y = p0·exp(p1·t).
func expModel(t, p []float64) ([]float64, error) {
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = p[0] * math.Exp(p[1]*ti)
	}
	return y, nil
}

func expData(n int, scale, rate float64) (t, y []float64) {
	t = make([]float64, n)
	y = make([]float64, n)
	for i := range t {
		t[i] = float64(i)
		y[i] = scale * math.Exp(rate*t[i])
	}
	return t, y
}

func TestLeastSquares_RecoversParams(t *testing.T) {
	tv, yv := expData(11, 2, 0.5)
	lower := []float64{0, 0}
	upper := []float64{10, 5}

	res, err := LeastSquares(expModel, tv, yv, []float64{1, 1}, lower, upper, nil)
	if err != nil {
		t.Fatalf("LeastSquares failed: %v", err)
	}

	want := []float64{2, 0.5}
	for i, w := range want {
		if math.Abs(res.Params[i]-w)/w > 1e-3 {
			t.Errorf("parameter %d: want %f, got %f", i, w, res.Params[i])
		}
	}
	if res.RSquared < 0.999 {
		t.Errorf("expected near-perfect R², got %f", res.RSquared)
	}
	if res.RMSE < 0 {
		t.Errorf("negative RMSE: %f", res.RMSE)
	}
	if res.Covariance == nil {
		t.Error("expected a covariance estimate")
	}
}

func TestLeastSquares_UnboundedParams(t *testing.T) {
	tv, yv := expData(9, 3, 0.2)
	inf := math.Inf(1)
	lower := []float64{math.Inf(-1), math.Inf(-1)}
	upper := []float64{inf, inf}

	res, err := LeastSquares(expModel, tv, yv, []float64{1, 0.5}, lower, upper, nil)
	if err != nil {
		t.Fatalf("LeastSquares failed: %v", err)
	}
	if math.Abs(res.Params[0]-3)/3 > 1e-3 {
		t.Errorf("expected scale 3, got %f", res.Params[0])
	}
}

func TestLeastSquares_RespectsBounds(t *testing.T) {
	tv, yv := expData(11, 2, 0.5)
	// The true rate 0.5 lies outside the box; the fit must stay inside.
	lower := []float64{0, 0}
	upper := []float64{10, 0.3}

	res, err := LeastSquares(expModel, tv, yv, []float64{1, 0.1}, lower, upper, nil)
	if err != nil {
		t.Fatalf("LeastSquares failed: %v", err)
	}
	if res.Params[1] < 0 || res.Params[1] > 0.3 {
		t.Errorf("rate %f escaped bounds [0, 0.3]", res.Params[1])
	}
}

func TestLeastSquares_InfeasibleStart(t *testing.T) {
	tv, yv := expData(11, 2, 0.5)
	_, err := LeastSquares(expModel, tv, yv, []float64{11, 1}, []float64{0, 0}, []float64{10, 5}, nil)
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
}

func TestLeastSquares_BadBounds(t *testing.T) {
	tv, yv := expData(11, 2, 0.5)
	_, err := LeastSquares(expModel, tv, yv, []float64{1, 1}, []float64{2, 0}, []float64{1, 5}, nil)
	if !errors.Is(err, ErrBadBounds) {
		t.Errorf("expected ErrBadBounds, got %v", err)
	}
}

func TestLeastSquares_DimensionChecks(t *testing.T) {
	inf := math.Inf(1)
	lower := []float64{-inf, -inf}
	upper := []float64{inf, inf}

	if _, err := LeastSquares(expModel, []float64{1, 2}, []float64{1}, []float64{1, 1}, lower, upper, nil); !errors.Is(err, ErrDimension) {
		t.Errorf("unequal t/y: expected ErrDimension, got %v", err)
	}
	if _, err := LeastSquares(expModel, []float64{1}, []float64{1}, []float64{1, 1}, lower, upper, nil); !errors.Is(err, ErrDimension) {
		t.Errorf("fewer observations than parameters: expected ErrDimension, got %v", err)
	}
}

func TestLeastSquares_EvalErrorAtStart(t *testing.T) {
	broken := func(t, p []float64) ([]float64, error) {
		return nil, errors.New("model exploded")
	}
	inf := math.Inf(1)
	_, err := LeastSquares(broken, []float64{1, 2}, []float64{1, 2}, []float64{1}, []float64{-inf}, []float64{inf}, nil)
	if err == nil {
		t.Error("expected model evaluation error to propagate")
	}
}
