package ml

import (
	"encoding/json"
	"math"
	"sort"
)

// KNearestNeighbors votes among the K closest fitted samples by euclidean
// distance. Targets are positions into the class list.
type KNearestNeighbors struct {
	classSpace
	K       int         `json:"n_neighbors"`
	Weights string      `json:"weights"`
	Points  [][]float64 `json:"fit_x"`
	Targets []int       `json:"fit_y"`
}

type neighbor struct {
	idx  int
	dist float64
}

func (knn *KNearestNeighbors) Predict(features []float64) (int, []float64, error) {
	if err := knn.checkWidth(features); err != nil {
		return 0, nil, err
	}
	neighbors := make([]neighbor, len(knn.Points))
	for i, p := range knn.Points {
		neighbors[i] = neighbor{idx: i, dist: euclidean(p, features)}
	}
	sort.SliceStable(neighbors, func(a, b int) bool { return neighbors[a].dist < neighbors[b].dist })
	k := knn.K
	if k > len(neighbors) {
		k = len(neighbors)
	}
	nearest := neighbors[:k]

	votes := make([]float64, len(knn.ClassValues))
	if knn.Weights == "distance" {
		// exact matches take the whole vote
		exact := false
		for _, n := range nearest {
			if n.dist == 0 {
				votes[knn.Targets[n.idx]]++
				exact = true
			}
		}
		if !exact {
			for _, n := range nearest {
				votes[knn.Targets[n.idx]] += 1 / n.dist
			}
		}
	} else {
		for _, n := range nearest {
			votes[knn.Targets[n.idx]]++
		}
	}
	proba := normalize(votes)
	return knn.pick(proba), proba, nil
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func decodeKNN(payload []byte) (Classifier, error) {
	knn := &KNearestNeighbors{}
	if err := json.Unmarshal(payload, knn); err != nil {
		return nil, err
	}
	if err := knn.classSpace.validate("knn"); err != nil {
		return nil, err
	}
	if knn.K <= 0 {
		return nil, invalidModel("knn: n_neighbors must be positive")
	}
	if len(knn.Points) == 0 || len(knn.Points) != len(knn.Targets) {
		return nil, invalidModel("knn: %d samples and %d targets", len(knn.Points), len(knn.Targets))
	}
	for i, p := range knn.Points {
		if len(p) != knn.Width {
			return nil, invalidModel("knn: sample %d has %d features, want %d", i, len(p), knn.Width)
		}
		if t := knn.Targets[i]; t < 0 || t >= len(knn.ClassValues) {
			return nil, invalidModel("knn: sample %d target %d out of range", i, t)
		}
	}
	switch knn.Weights {
	case "", "uniform", "distance":
	default:
		return nil, invalidModel("knn: unsupported weights %q", knn.Weights)
	}
	return knn, nil
}
