package ml

// Classifier is a fitted model that maps one scaled feature vector to a class.
// Class values are label-encoder indices; probabilities follow Classes() order.
type Classifier interface {
	Predict(features []float64) (int, []float64, error)
	Classes() []int
	NumFeatures() int
}

// Scaler is a fitted per-feature transform.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
	NumFeatures() int
	FeatureNames() []string
}

// Decoder maps encoder indices back to labels.
type Decoder interface {
	InverseTransform(index int) (string, error)
	Classes() []string
	Len() int
}
