package ml

import (
	"errors"
	"fmt"
)

var (
	ErrFeatureWidth = errors.New("feature width mismatch")
	ErrInvalidModel = errors.New("invalid model artifact")
)

// ScalingError reports a vector whose cardinality differs from what the scaler was fitted on.
type ScalingError struct {
	Expected int
	Got      int
}

func (e *ScalingError) Error() string {
	return fmt.Sprintf("scaler expects %d features, got %d", e.Expected, e.Got)
}

// UnknownClassError reports a class index outside the encoder's range.
type UnknownClassError struct {
	Index int
	Known int
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("class index %d outside encoder range [0,%d)", e.Index, e.Known)
}

func invalidModel(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidModel, fmt.Sprintf(format, args...))
}
