package ml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	path := writeArtifact(t, "dt.json", `{"type":"decision_tree","n_features":1,"classes":[0,1],
		"nodes":[{"is_leaf":true,"value":[1,3]}]}`)

	model, err := LoadModel("decision_tree", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.NumFeatures() != 1 || len(model.Classes()) != 2 {
		t.Fatalf("unexpected model shape: %d %v", model.NumFeatures(), model.Classes())
	}
	if _, err := LoadModel("knn", path); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
	if _, err := LoadModel("", path); err != nil {
		t.Fatalf("expected declared type to be used, got %v", err)
	}
}

func TestLoadModelErrors(t *testing.T) {
	if _, err := LoadModel("decision_tree", filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	corrupt := writeArtifact(t, "corrupt.json", `{"type":`)
	if _, err := LoadModel("", corrupt); err == nil {
		t.Fatal("expected decode error")
	}
	unknown := writeArtifact(t, "svm.json", `{"type":"svm"}`)
	if _, err := LoadModel("", unknown); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}

func TestLoadScalerAndEncoder(t *testing.T) {
	scalerPath := writeArtifact(t, "scaler.json", `{"type":"standard_scaler","feature_names":["a","b"],"mean":[0,1],"scale":[1,2]}`)
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scaler.NumFeatures() != 2 || scaler.FeatureNames()[1] != "b" {
		t.Fatalf("unexpected scaler: %+v", scaler)
	}

	encPath := writeArtifact(t, "enc.json", `{"type":"label_encoder","classes":["x","y"]}`)
	enc, err := LoadLabelEncoder(encPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.Len() != 2 {
		t.Fatalf("expected 2 classes, got %d", enc.Len())
	}
	if _, err := LoadLabelEncoder(scalerPath); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected kind mismatch, got %v", err)
	}
}
