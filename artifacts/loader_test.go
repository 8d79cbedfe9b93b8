package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maternalrisk/ml"
	"maternalrisk/risk"
)

func testdataConfig() Config {
	return Config{
		Scaler:       filepath.Join("testdata", "scaler.json"),
		LabelEncoder: filepath.Join("testdata", "label_encoder.json"),
		Models: []ModelSpec{
			{Name: "Decision Tree", Type: "decision_tree", Path: filepath.Join("testdata", "decision_tree.json")},
			{Name: "Random Forest", Type: "random_forest", Path: filepath.Join("testdata", "random_forest.json")},
			{Name: "Logistic Regression", Type: "logistic_regression", Path: filepath.Join("testdata", "logistic_regression.json")},
			{Name: "KNN", Path: filepath.Join("testdata", "knn.json")},
		},
	}
}

// copyConfig places the testdata artifacts in a scratch dir so tests can
// remove or corrupt them.
func copyConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := testdataConfig()
	move := func(path string) string {
		payload, err := os.ReadFile(path)
		require.NoError(t, err)
		dst := filepath.Join(dir, filepath.Base(path))
		require.NoError(t, os.WriteFile(dst, payload, 0o600))
		return dst
	}
	cfg.Scaler = move(cfg.Scaler)
	cfg.LabelEncoder = move(cfg.LabelEncoder)
	for i := range cfg.Models {
		cfg.Models[i].Path = move(cfg.Models[i].Path)
	}
	return cfg
}

func TestLoadTestdata(t *testing.T) {
	bundle, err := NewLoader(testdataConfig(), nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Decision Tree", "Random Forest", "Logistic Regression", "KNN"}, bundle.Registry.Names())
	assert.Equal(t, []string{"High Risk", "Low Risk", "Mid Risk"}, bundle.Encoder.Classes())

	model, ok := bundle.Registry.Get("KNN")
	require.True(t, ok)
	assert.IsType(t, &ml.KNearestNeighbors{}, model)

	engine, err := bundle.Engine()
	require.NoError(t, err)
	cmp, err := engine.Compare(risk.DefaultInput())
	require.NoError(t, err)
	require.Len(t, cmp.Results, bundle.Registry.Len())
	assert.Equal(t, "Low Risk", cmp.Results[0].Label)
	for _, r := range cmp.Results {
		assert.Contains(t, bundle.Encoder.Classes(), r.Label)
		assert.Len(t, r.Probabilities, bundle.Encoder.Len())
	}
}

func TestLoadIsMemoized(t *testing.T) {
	cfg := copyConfig(t)
	loader := NewLoader(cfg, nil)

	first, err := loader.Load()
	require.NoError(t, err)

	require.NoError(t, os.Remove(cfg.Scaler))
	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := copyConfig(t)
	payload, err := os.ReadFile(cfg.Models[1].Path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(cfg.Models[1].Path))

	loader := NewLoader(cfg, nil)
	_, err = loader.Load()
	var loadErr *ArtifactLoadError
	require.True(t, errors.As(err, &loadErr), "got %v", err)
	assert.True(t, loadErr.Missing())
	assert.Equal(t, "Random Forest", loadErr.Name)
	assert.Contains(t, err.Error(), "not found")

	// restoring the file does not matter once the failure is cached
	require.NoError(t, os.WriteFile(cfg.Models[1].Path, payload, 0o600))
	_, again := loader.Load()
	assert.Equal(t, err, again)
}

func TestLoadCorruptFile(t *testing.T) {
	cfg := copyConfig(t)
	require.NoError(t, os.WriteFile(cfg.LabelEncoder, []byte("\x80\x04pickle"), 0o600))

	_, err := NewLoader(cfg, nil).Load()
	var loadErr *ArtifactLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.False(t, loadErr.Missing())
	assert.Equal(t, "label encoder", loadErr.Kind)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestLoadInconsistentArtifacts(t *testing.T) {
	cfg := copyConfig(t)
	require.NoError(t, os.WriteFile(cfg.LabelEncoder, []byte(`{"type":"label_encoder","classes":["High Risk","Low Risk"]}`), 0o600))

	_, err := NewLoader(cfg, nil).Load()
	var loadErr *ArtifactLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "inconsistent artifacts")
}

func TestLoadRejectsWrongModelType(t *testing.T) {
	cfg := copyConfig(t)
	cfg.Models[0].Type = "knn"
	_, err := NewLoader(cfg, nil).Load()
	assert.ErrorIs(t, err, ml.ErrInvalidModel)
}

func TestLoadDuplicateNames(t *testing.T) {
	cfg := copyConfig(t)
	cfg.Models[1].Name = cfg.Models[0].Name
	_, err := NewLoader(cfg, nil).Load()
	var loadErr *ArtifactLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadNoModels(t *testing.T) {
	_, err := NewLoader(Config{}, nil).Load()
	var loadErr *ArtifactLoadError
	assert.True(t, errors.As(err, &loadErr))
}
