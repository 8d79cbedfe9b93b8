package artifacts

import (
	"errors"
	"fmt"

	"maternalrisk/ml"
	"maternalrisk/risk"
)

// Registry maps display names to classifiers and keeps configuration order.
// It is not modified after loading.
type Registry struct {
	names  []string
	models map[string]ml.Classifier
}

func newRegistry() *Registry {
	return &Registry{models: make(map[string]ml.Classifier)}
}

func (r *Registry) add(name string, model ml.Classifier) error {
	if name == "" {
		return errors.New("model name is required")
	}
	if _, ok := r.models[name]; ok {
		return fmt.Errorf("duplicate model name %q", name)
	}
	r.names = append(r.names, name)
	r.models[name] = model
	return nil
}

func (r *Registry) Get(name string) (ml.Classifier, bool) {
	m, ok := r.models[name]
	return m, ok
}

func (r *Registry) Names() []string { return append([]string(nil), r.names...) }

func (r *Registry) Len() int { return len(r.names) }

func (r *Registry) Models() []risk.Model {
	models := make([]risk.Model, len(r.names))
	for i, name := range r.names {
		models[i] = risk.Model{Name: name, Classifier: r.models[name]}
	}
	return models
}
