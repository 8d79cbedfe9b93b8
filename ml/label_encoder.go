package ml

import (
	"encoding/json"
	"fmt"
)

// LabelEncoder is the fitted, ordered set of class labels.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, invalidModel("label encoder has no classes")
	}
	index := make(map[string]int, len(classes))
	for i, class := range classes {
		if _, dup := index[class]; dup {
			return nil, invalidModel("label encoder has duplicate class %q", class)
		}
		index[class] = i
	}
	return &LabelEncoder{classes: append([]string(nil), classes...), index: index}, nil
}

func (e *LabelEncoder) InverseTransform(index int) (string, error) {
	if index < 0 || index >= len(e.classes) {
		return "", &UnknownClassError{Index: index, Known: len(e.classes)}
	}
	return e.classes[index], nil
}

func (e *LabelEncoder) Transform(label string) (int, error) {
	idx, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("unknown label %q", label)
	}
	return idx, nil
}

func (e *LabelEncoder) Classes() []string { return append([]string(nil), e.classes...) }

func (e *LabelEncoder) Len() int { return len(e.classes) }

func decodeLabelEncoder(payload []byte) (*LabelEncoder, error) {
	var raw struct {
		Classes []string `json:"classes"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	return NewLabelEncoder(raw.Classes)
}
