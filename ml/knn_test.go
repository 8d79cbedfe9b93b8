package ml

import "testing"

func knnModel(weights string) *KNearestNeighbors {
	return &KNearestNeighbors{
		classSpace: classSpace{Width: 1, ClassValues: []int{0, 1}},
		K:          3,
		Weights:    weights,
		Points:     [][]float64{{0}, {1}, {5}, {6}},
		Targets:    []int{0, 0, 1, 1},
	}
}

func TestKNNUniformVote(t *testing.T) {
	label, proba, err := knnModel("uniform").Predict([]float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0, got %d", label)
	}
	if proba[0] <= proba[1] {
		t.Fatalf("unexpected probabilities: %v", proba)
	}
}

func TestKNNDistanceExactMatch(t *testing.T) {
	label, proba, err := knnModel("distance").Predict([]float64{5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 || proba[1] != 1 {
		t.Fatalf("expected exact match to dominate, got %d %v", label, proba)
	}
}

func TestDecodeKNNRejectsBadTarget(t *testing.T) {
	payload := []byte(`{"type":"knn","n_features":1,"classes":[0,1],"n_neighbors":1,"fit_x":[[0]],"fit_y":[4]}`)
	if _, err := decodeKNN(payload); err == nil {
		t.Fatal("expected target range error")
	}
}
