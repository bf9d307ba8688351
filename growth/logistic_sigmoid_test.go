package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/growthmod/integrate"
)

func TestLogisticSigmoid_RequiresInitialResponse(t *testing.T) {
	m, err := NewLogisticSigmoid(map[string]float64{"a": 0.5, "c": 1, "K": 100}, nil)
	if err != nil {
		t.Fatalf("NewLogisticSigmoid failed: %v", err)
	}
	if _, err := m.ComputeY([]float64{0, 1}, nil); !errors.Is(err, ErrInitialResponseUnset) {
		t.Errorf("expected ErrInitialResponseUnset, got %v", err)
	}
}

func TestLogisticSigmoid_TimeZeroReproducesInitialResponse(t *testing.T) {
	m, _ := NewLogisticSigmoid(map[string]float64{"a": 0.5, "c": 1, "K": 100}, nil)
	m.SetInitialResponse(3.5)

	y, err := m.ComputeY([]float64{0}, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	if math.Abs(y[0]-3.5) > 1e-6 {
		t.Errorf("expected y(0)=3.5, got %f", y[0])
	}
}

// At c = 1 the differential equation is ordinary logistic growth, which has
// the closed form y(t) = K·y0·e^(a·t) / (K + y0·(e^(a·t) - 1)).
func TestLogisticSigmoid_MatchesLogisticClosedForm(t *testing.T) {
	a, k, y0 := 0.7, 100.0, 2.0
	m, _ := NewLogisticSigmoid(map[string]float64{"a": a, "c": 1, "K": k}, nil)
	m.SetInitialResponse(y0)

	times := []float64{0, 0.5, 1, 2, 5, 8, 12}
	y, err := m.ComputeY(times, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}

	for i, ti := range times {
		e := math.Exp(a * ti)
		want := k * y0 * e / (k + y0*(e-1))
		if math.Abs(y[i]-want)/want > 1e-5 {
			t.Errorf("t=%f: want %f, got %f", ti, want, y[i])
		}
	}
}

func TestLogisticSigmoid_UnsortedEvaluationPoints(t *testing.T) {
	m, _ := NewLogisticSigmoid(map[string]float64{"a": 0.6, "c": 3, "K": 50}, nil)
	m.SetInitialResponse(1)

	sorted := []float64{0, 2, 5, 9}
	shuffled := []float64{5, 0, 9, 2}

	ys, err := m.ComputeY(sorted, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	yu, err := m.ComputeY(shuffled, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}

	// yu must align positionally with the shuffled input.
	pairs := map[float64]float64{}
	for i, ti := range sorted {
		pairs[ti] = ys[i]
	}
	for i, ti := range shuffled {
		if math.Abs(yu[i]-pairs[ti]) > 1e-9 {
			t.Errorf("t=%f: want %f, got %f", ti, pairs[ti], yu[i])
		}
	}
}

func TestLogisticSigmoid_NegativeTimeRejected(t *testing.T) {
	m, _ := NewLogisticSigmoid(map[string]float64{"a": 0.5, "c": 1, "K": 100}, nil)
	m.SetInitialResponse(1)

	if _, err := m.ComputeY([]float64{-1, 2}, nil); !errors.Is(err, integrate.ErrEvalOutOfSpan) {
		t.Errorf("expected ErrEvalOutOfSpan, got %v", err)
	}
}

func TestLogisticSigmoid_ApproachesAsymptote(t *testing.T) {
	m, _ := NewLogisticSigmoid(map[string]float64{"a": 1, "c": 4, "K": 60}, nil)
	m.SetInitialResponse(0.5)

	y, err := m.ComputeY([]float64{80}, nil)
	if err != nil {
		t.Fatalf("ComputeY failed: %v", err)
	}
	if math.Abs(y[0]-60) > 0.01 {
		t.Errorf("expected y near 60, got %f", y[0])
	}
}
