package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// header is the envelope shared by every exported artifact.
type header struct {
	Type string `json:"type"`
}

func readArtifact(path string) (string, []byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	var h header
	if err := json.Unmarshal(payload, &h); err != nil {
		return "", nil, err
	}
	return h.Type, payload, nil
}

// LoadModel reads a classifier artifact. An empty modelType accepts whatever
// type the artifact declares.
func LoadModel(modelType, path string) (Classifier, error) {
	kind, payload, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	if modelType != "" && modelType != kind {
		return nil, fmt.Errorf("%w: expected %s, artifact is %q", ErrInvalidModel, modelType, kind)
	}
	return DecodeModel(kind, payload)
}

func DecodeModel(modelType string, payload []byte) (Classifier, error) {
	switch modelType {
	case "decision_tree":
		return decodeDecisionTree(payload)
	case "random_forest":
		return decodeRandomForest(payload)
	case "logistic_regression":
		return decodeLogisticRegression(payload)
	case "knn":
		return decodeKNN(payload)
	default:
		return nil, fmt.Errorf("%w: unsupported model type %q", ErrInvalidModel, modelType)
	}
}

func LoadScaler(path string) (Scaler, error) {
	kind, payload, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	return decodeScaler(kind, payload)
}

func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	kind, payload, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	if kind != "label_encoder" {
		return nil, fmt.Errorf("%w: expected label_encoder, artifact is %q", ErrInvalidModel, kind)
	}
	return decodeLabelEncoder(payload)
}
