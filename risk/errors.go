package risk

import (
	"errors"
	"fmt"
	"strings"

	"maternalrisk/ml"
)

var ErrUnknownModel = errors.New("unknown model")

// MissingInputError is returned before any scaling when fields are absent.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s", strings.Join(e.Fields, ", "))
}

type (
	ScalingError      = ml.ScalingError
	UnknownClassError = ml.UnknownClassError
)

// IsArtifactMismatch reports errors that mean the scaler, encoder and
// classifiers were not fitted together.
func IsArtifactMismatch(err error) bool {
	var scalingErr *ScalingError
	var classErr *UnknownClassError
	return errors.As(err, &scalingErr) || errors.As(err, &classErr) || errors.Is(err, ml.ErrFeatureWidth)
}
