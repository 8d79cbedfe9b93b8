package ml

import (
	"encoding/json"
	"math"
)

// LogisticRegression holds one weight row per class (a single row for
// binary models). MultiClass is "multinomial" (softmax) or "ovr".
type LogisticRegression struct {
	classSpace
	Coef       [][]float64 `json:"coef"`
	Intercept  []float64   `json:"intercept"`
	MultiClass string      `json:"multi_class"`
}

func (lr *LogisticRegression) Predict(features []float64) (int, []float64, error) {
	if err := lr.checkWidth(features); err != nil {
		return 0, nil, err
	}
	scores := make([]float64, len(lr.Coef))
	for k, row := range lr.Coef {
		z := lr.Intercept[k]
		for j, w := range row {
			z += w * features[j]
		}
		scores[k] = z
	}

	var proba []float64
	switch {
	case len(scores) == 1:
		p := sigmoid(scores[0])
		proba = []float64{1 - p, p}
	case lr.MultiClass == "ovr":
		for i := range scores {
			scores[i] = sigmoid(scores[i])
		}
		proba = normalize(scores)
	default:
		proba = softmax(scores)
	}
	return lr.pick(proba), proba, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	out := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func decodeLogisticRegression(payload []byte) (Classifier, error) {
	lr := &LogisticRegression{}
	if err := json.Unmarshal(payload, lr); err != nil {
		return nil, err
	}
	if err := lr.classSpace.validate("logistic_regression"); err != nil {
		return nil, err
	}
	rows := len(lr.ClassValues)
	if rows == 2 && len(lr.Coef) == 1 {
		rows = 1
	}
	if len(lr.Coef) != rows || len(lr.Intercept) != rows {
		return nil, invalidModel("logistic_regression: %d coef rows and %d intercepts for %d classes", len(lr.Coef), len(lr.Intercept), len(lr.ClassValues))
	}
	for k, row := range lr.Coef {
		if len(row) != lr.Width {
			return nil, invalidModel("logistic_regression: coef row %d has %d weights, want %d", k, len(row), lr.Width)
		}
	}
	switch lr.MultiClass {
	case "", "multinomial", "ovr":
	default:
		return nil, invalidModel("logistic_regression: unsupported multi_class %q", lr.MultiClass)
	}
	return lr, nil
}
