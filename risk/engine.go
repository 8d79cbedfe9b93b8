package risk

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"maternalrisk/ml"
)

// Model is a named entry of the registry.
type Model struct {
	Name       string
	Classifier ml.Classifier
}

type cacheKey struct {
	model    string
	features FeatureVector
}

// Engine turns operator input into predictions. It holds read-only handles
// and is safe to reuse across requests.
type Engine struct {
	scaler  ml.Scaler
	decoder ml.Decoder
	models  []Model
	byName  map[string]int
	cache   *lru.Cache[cacheKey, PredictionResult]
	logger  *zap.Logger
}

type Option func(*Engine) error

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) error {
		if logger != nil {
			e.logger = logger
		}
		return nil
	}
}

// WithCacheSize keeps the last size results per (model, vector). Zero disables it.
func WithCacheSize(size int) Option {
	return func(e *Engine) error {
		if size <= 0 {
			e.cache = nil
			return nil
		}
		cache, err := lru.New[cacheKey, PredictionResult](size)
		if err != nil {
			return fmt.Errorf("create prediction cache: %w", err)
		}
		e.cache = cache
		return nil
	}
}

func NewEngine(scaler ml.Scaler, decoder ml.Decoder, models []Model, opts ...Option) (*Engine, error) {
	if err := CheckArtifacts(scaler, decoder, models); err != nil {
		return nil, err
	}
	e := &Engine{
		scaler:  scaler,
		decoder: decoder,
		models:  append([]Model(nil), models...),
		byName:  make(map[string]int, len(models)),
		logger:  zap.NewNop(),
	}
	for i, m := range e.models {
		e.byName[m.Name] = i
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// CheckArtifacts asserts that the artifacts were fitted together: six
// features everywhere and one class space shared with the encoder.
func CheckArtifacts(scaler ml.Scaler, decoder ml.Decoder, models []Model) error {
	if scaler == nil || decoder == nil {
		return errors.New("scaler and label encoder are required")
	}
	if scaler.NumFeatures() != NumFeatures {
		return &ScalingError{Expected: NumFeatures, Got: scaler.NumFeatures()}
	}
	if names := scaler.FeatureNames(); len(names) > 0 {
		if len(names) != NumFeatures {
			return fmt.Errorf("scaler names %d features, want %d", len(names), NumFeatures)
		}
		for i, want := range FeatureNames() {
			if names[i] != want {
				return fmt.Errorf("scaler feature %d is %q, want %q", i, names[i], want)
			}
		}
	}
	if len(models) == 0 {
		return errors.New("at least one model is required")
	}
	seen := make(map[string]bool, len(models))
	for _, m := range models {
		if m.Name == "" {
			return errors.New("model name is required")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate model %q", m.Name)
		}
		seen[m.Name] = true
		if m.Classifier == nil {
			return fmt.Errorf("model %q has no classifier", m.Name)
		}
		if got := m.Classifier.NumFeatures(); got != NumFeatures {
			return fmt.Errorf("model %q: %w", m.Name, &ScalingError{Expected: NumFeatures, Got: got})
		}
		classes := m.Classifier.Classes()
		if len(classes) != decoder.Len() {
			return fmt.Errorf("model %q has %d classes, label encoder has %d", m.Name, len(classes), decoder.Len())
		}
		for _, c := range classes {
			if _, err := decoder.InverseTransform(c); err != nil {
				return fmt.Errorf("model %q: %w", m.Name, err)
			}
		}
	}
	return nil
}

// Models lists registered model names in registry order.
func (e *Engine) Models() []string {
	names := make([]string, len(e.models))
	for i, m := range e.models {
		names[i] = m.Name
	}
	return names
}

func (e *Engine) Labels() []string {
	return e.decoder.Classes()
}

// Compare runs every registered model against the same input.
func (e *Engine) Compare(in Input) (*Comparison, error) {
	return e.run(in, e.models)
}

// Predict is Compare restricted to one model.
func (e *Engine) Predict(model string, in Input) (*PredictionResult, error) {
	idx, ok := e.byName[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	cmp, err := e.run(in, e.models[idx:idx+1])
	if err != nil {
		return nil, err
	}
	return &cmp.Results[0], nil
}

func (e *Engine) run(in Input, models []Model) (*Comparison, error) {
	vector, err := in.Vector()
	if err != nil {
		return nil, err
	}

	var scaled []float64
	results := make([]PredictionResult, 0, len(models))
	for _, m := range models {
		key := cacheKey{model: m.Name, features: vector}
		if e.cache != nil {
			if cached, ok := e.cache.Get(key); ok {
				results = append(results, cached.clone())
				continue
			}
		}
		if scaled == nil {
			scaled, err = e.scaler.Transform(vector[:])
			if err != nil {
				return nil, err
			}
		}
		start := time.Now()
		result, err := e.classify(m, scaled)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", m.Name, err)
		}
		e.logger.Debug("prediction",
			zap.String("model", m.Name),
			zap.String("label", result.Label),
			zap.Float64("confidence", result.Confidence),
			zap.Duration("took", time.Since(start)),
		)
		if e.cache != nil {
			e.cache.Add(key, result.clone())
		}
		results = append(results, result)
	}
	return &Comparison{Features: vector, Results: results}, nil
}

func (e *Engine) classify(m Model, scaled []float64) (PredictionResult, error) {
	classIdx, proba, err := m.Classifier.Predict(scaled)
	if err != nil {
		return PredictionResult{}, err
	}
	label, err := e.decoder.InverseTransform(classIdx)
	if err != nil {
		return PredictionResult{}, err
	}

	classes := m.Classifier.Classes()
	if len(proba) != len(classes) {
		return PredictionResult{}, fmt.Errorf("%d probabilities for %d classes", len(proba), len(classes))
	}
	result := PredictionResult{
		Model:         m.Name,
		Label:         label,
		ClassIndex:    classIdx,
		Probabilities: make([]ClassProbability, len(classes)),
	}
	matched := false
	for i, c := range classes {
		name, err := e.decoder.InverseTransform(c)
		if err != nil {
			return PredictionResult{}, err
		}
		result.Probabilities[i] = ClassProbability{Label: name, Probability: proba[i]}
		if c == classIdx {
			result.Confidence = proba[i]
			matched = true
		}
	}
	if !matched {
		return PredictionResult{}, fmt.Errorf("predicted class %d is not in the model's classes %v", classIdx, classes)
	}
	return result, nil
}
