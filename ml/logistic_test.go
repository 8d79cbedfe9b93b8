package ml

import (
	"math"
	"testing"
)

func TestLogisticRegressionMultinomial(t *testing.T) {
	lr := &LogisticRegression{
		classSpace: classSpace{Width: 2, ClassValues: []int{0, 1, 2}},
		Coef:       [][]float64{{1, 0}, {0, 1}, {-1, -1}},
		Intercept:  []float64{0, 0, 0},
	}
	label, proba, err := lr.Predict([]float64{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0, got %d", label)
	}
	sum := 0.0
	for _, p := range proba {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities sum to %f", sum)
	}
}

func TestLogisticRegressionBinary(t *testing.T) {
	lr := &LogisticRegression{
		classSpace: classSpace{Width: 1, ClassValues: []int{0, 1}},
		Coef:       [][]float64{{1}},
		Intercept:  []float64{0},
	}
	label, proba, err := lr.Predict([]float64{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proba) != 2 || proba[0] != 0.5 || proba[1] != 0.5 {
		t.Fatalf("unexpected probabilities: %v", proba)
	}
	if label != 0 {
		t.Fatalf("expected tie to resolve to first class, got %d", label)
	}
}

func TestDecodeLogisticRegressionShape(t *testing.T) {
	payload := []byte(`{"type":"logistic_regression","n_features":2,"classes":[0,1,2],"coef":[[1,0]],"intercept":[0]}`)
	if _, err := decodeLogisticRegression(payload); err == nil {
		t.Fatal("expected shape error")
	}
}
