package risk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputVectorOrder(t *testing.T) {
	vector, err := NewInput(30, 140, 90, 7.5, 38.2, 88).Vector()
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{30, 140, 90, 7.5, 38.2, 88}, vector)
	assert.Len(t, FeatureNames(), NumFeatures)
}

func TestInputMissingFields(t *testing.T) {
	_, err := Input{}.Vector()
	var missing *MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, FeatureNames(), missing.Fields)
	assert.Contains(t, err.Error(), "SystolicBP")
}
