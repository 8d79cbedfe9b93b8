package ml

import "fmt"

// classSpace is the part of every classifier artifact that pins its input
// width and output class order.
type classSpace struct {
	Width       int   `json:"n_features"`
	ClassValues []int `json:"classes"`
}

func (c classSpace) Classes() []int { return append([]int(nil), c.ClassValues...) }

func (c classSpace) NumFeatures() int { return c.Width }

func (c classSpace) checkWidth(features []float64) error {
	if len(features) != c.Width {
		return fmt.Errorf("%w: model expects %d, got %d", ErrFeatureWidth, c.Width, len(features))
	}
	return nil
}

func (c classSpace) validate(kind string) error {
	if c.Width <= 0 {
		return invalidModel("%s: n_features must be positive", kind)
	}
	if len(c.ClassValues) == 0 {
		return invalidModel("%s: no classes", kind)
	}
	seen := make(map[int]bool, len(c.ClassValues))
	for _, v := range c.ClassValues {
		if seen[v] {
			return invalidModel("%s: duplicate class %d", kind, v)
		}
		seen[v] = true
	}
	return nil
}

// pick returns the class with the highest probability; ties go to the
// earliest class in learned order.
func (c classSpace) pick(proba []float64) int {
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return c.ClassValues[best]
}

func normalize(values []float64) []float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	if total == 0 {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	for i, v := range values {
		out[i] = v / total
	}
	return out
}
