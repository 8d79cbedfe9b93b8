package ml

import (
	"encoding/json"
)

// StandardScaler applies (x - mean) / scale per feature.
type StandardScaler struct {
	Names []string  `json:"feature_names"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, &ScalingError{Expected: len(s.Mean), Got: len(features)}
	}
	result := make([]float64, len(features))
	for i, value := range features {
		scale := s.Scale[i]
		// zero variance features are left centred, not divided
		if scale == 0 {
			scale = 1
		}
		result[i] = (value - s.Mean[i]) / scale
	}
	return result, nil
}

func (s *StandardScaler) NumFeatures() int { return len(s.Mean) }

func (s *StandardScaler) FeatureNames() []string { return append([]string(nil), s.Names...) }

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 {
		return invalidModel("standard scaler has no features")
	}
	if len(s.Scale) != len(s.Mean) {
		return invalidModel("standard scaler mean/scale length mismatch: %d vs %d", len(s.Mean), len(s.Scale))
	}
	if len(s.Names) != 0 && len(s.Names) != len(s.Mean) {
		return invalidModel("standard scaler has %d names for %d features", len(s.Names), len(s.Mean))
	}
	return nil
}

// MinMaxScaler maps each feature from [DataMin, DataMax] onto FeatureRange.
type MinMaxScaler struct {
	Names        []string   `json:"feature_names"`
	DataMin      []float64  `json:"data_min"`
	DataMax      []float64  `json:"data_max"`
	FeatureRange [2]float64 `json:"feature_range"`
}

func (s *MinMaxScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.DataMin) {
		return nil, &ScalingError{Expected: len(s.DataMin), Got: len(features)}
	}
	normalized, err := NormalizeVector(features, s.DataMin, s.DataMax)
	if err != nil {
		return nil, err
	}
	lo, hi := s.FeatureRange[0], s.FeatureRange[1]
	for i := range normalized {
		normalized[i] = lo + normalized[i]*(hi-lo)
	}
	return normalized, nil
}

func (s *MinMaxScaler) NumFeatures() int { return len(s.DataMin) }

func (s *MinMaxScaler) FeatureNames() []string { return append([]string(nil), s.Names...) }

func (s *MinMaxScaler) validate() error {
	if len(s.DataMin) == 0 {
		return invalidModel("minmax scaler has no features")
	}
	if len(s.DataMax) != len(s.DataMin) {
		return invalidModel("minmax scaler min/max length mismatch: %d vs %d", len(s.DataMin), len(s.DataMax))
	}
	if len(s.Names) != 0 && len(s.Names) != len(s.DataMin) {
		return invalidModel("minmax scaler has %d names for %d features", len(s.Names), len(s.DataMin))
	}
	if s.FeatureRange == [2]float64{} {
		s.FeatureRange = [2]float64{0, 1}
	}
	return nil
}

func NormalizeFeature(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

func NormalizeVector(values []float64, mins []float64, maxs []float64) ([]float64, error) {
	if len(values) != len(mins) || len(values) != len(maxs) {
		return nil, &ScalingError{Expected: len(mins), Got: len(values)}
	}
	result := make([]float64, len(values))
	for i := range values {
		result[i] = NormalizeFeature(values[i], mins[i], maxs[i])
	}
	return result, nil
}

func decodeScaler(kind string, payload []byte) (Scaler, error) {
	switch kind {
	case "standard_scaler":
		s := &StandardScaler{}
		if err := json.Unmarshal(payload, s); err != nil {
			return nil, err
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		return s, nil
	case "minmax_scaler":
		s := &MinMaxScaler{}
		if err := json.Unmarshal(payload, s); err != nil {
			return nil, err
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, invalidModel("unsupported scaler type %q", kind)
	}
}
