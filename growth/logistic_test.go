package growth

import (
	"math"
	"testing"
)

func TestLogistic_Forward(t *testing.T) {
	m, err := NewLogistic(map[string]float64{"a": 1, "t_0": 0, "K": 100}, nil)
	if err != nil {
		t.Fatalf("NewLogistic failed: %v", err)
	}

	y, err := m.ComputeY([]float64{0}, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	if math.Abs(y[0]-50) > 1e-9 {
		t.Errorf("expected y(0)=50, got %f", y[0])
	}

	y, err = m.ComputeY([]float64{100}, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	if math.Abs(y[0]-100) > 1e-6 {
		t.Errorf("expected asymptote 100, got %f", y[0])
	}
}

func TestLogistic_InverseRoundTrip(t *testing.T) {
	m, err := NewLogistic(map[string]float64{"a": 0.7, "t_0": 4, "K": 120}, nil)
	if err != nil {
		t.Fatalf("NewLogistic failed: %v", err)
	}

	times := []float64{-2, 0, 1, 4, 9}
	y, err := m.ComputeY(times, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	back, err := m.ComputeT(y, nil)
	if err != nil {
		t.Fatalf("ComputeT failed: %v", err)
	}
	for i := range times {
		if math.Abs(back[i]-times[i]) > 1e-9 {
			t.Errorf("round trip at t=%f: got %f", times[i], back[i])
		}
	}
}

func TestLogistic_FitRecoversParams(t *testing.T) {
	truth := map[string]float64{"a": 0.8, "t_0": 10, "K": 100}
	gen, err := NewLogistic(truth, nil)
	if err != nil {
		t.Fatalf("NewLogistic failed: %v", err)
	}

	times := make([]float64, 21)
	for i := range times {
		times[i] = float64(i)
	}
	y, err := gen.ComputeY(times, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}

	bounds := []Bounds{
		{Lower: 0.01, Upper: 5},
		{Lower: 0, Upper: 20},
		{Lower: 10, Upper: 500},
	}
	m, err := NewLogistic(map[string]float64{"a": 0.3, "t_0": 8, "K": 80}, bounds)
	if err != nil {
		t.Fatalf("NewLogistic failed: %v", err)
	}
	if err := m.Fit(times, y, nil); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	fitted := m.Params()
	for name, want := range truth {
		rel := math.Abs(fitted[name]-want) / math.Abs(want)
		if rel > 1e-3 {
			t.Errorf("parameter %q: want %f, got %f (rel err %e)", name, want, fitted[name], rel)
		}
	}

	report := m.FitReport()
	if report == nil {
		t.Fatal("expected a fit report")
	}
	if report.RSquared < 0.999 {
		t.Errorf("expected near-perfect R², got %f", report.RSquared)
	}
	if report.Covariance == nil {
		t.Error("expected a covariance estimate")
	}
}

func TestLogistic_FitWithInitialGuessOverride(t *testing.T) {
	gen, _ := NewLogistic(map[string]float64{"a": 0.5, "t_0": 5, "K": 60}, nil)
	times := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14}
	y, err := gen.ComputeY(times, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}

	// Stored params are far off; the override supplies the real start point.
	m, _ := NewLogistic(map[string]float64{"a": 3, "t_0": 0, "K": 5}, nil)
	if err := m.Fit(times, y, []float64{0.4, 4, 50}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if math.Abs(m.Params()["K"]-60)/60 > 1e-3 {
		t.Errorf("expected K=60, got %f", m.Params()["K"])
	}
}
