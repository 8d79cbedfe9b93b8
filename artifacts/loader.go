// Package artifacts loads the fitted scaler, label encoder and classifiers
// once per process.
package artifacts

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"maternalrisk/ml"
	"maternalrisk/risk"
)

type ModelSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

type Config struct {
	Scaler       string      `yaml:"scaler"`
	LabelEncoder string      `yaml:"label_encoder"`
	Models       []ModelSpec `yaml:"models"`
}

// ArtifactLoadError is fatal: the tool does not accept input without artifacts.
type ArtifactLoadError struct {
	Kind string
	Name string
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	what := e.Kind
	if e.Name != "" {
		what = fmt.Sprintf("%s %q", e.Kind, e.Name)
	}
	if e.Missing() {
		return fmt.Sprintf("%s file %s not found", what, e.Path)
	}
	if e.Path == "" {
		return fmt.Sprintf("load %s: %v", what, e.Err)
	}
	return fmt.Sprintf("load %s from %s: %v", what, e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error { return e.Err }

func (e *ArtifactLoadError) Missing() bool { return errors.Is(e.Err, os.ErrNotExist) }

type Bundle struct {
	Scaler   ml.Scaler
	Encoder  *ml.LabelEncoder
	Registry *Registry
}

// Engine builds an inference engine over the bundle.
func (b *Bundle) Engine(opts ...risk.Option) (*risk.Engine, error) {
	return risk.NewEngine(b.Scaler, b.Encoder, b.Registry.Models(), opts...)
}

// Loader memoizes the first Load result, success or failure.
type Loader struct {
	cfg    Config
	logger *zap.Logger

	once   sync.Once
	bundle *Bundle
	err    error
}

func NewLoader(cfg Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, logger: logger}
}

func (l *Loader) Load() (*Bundle, error) {
	l.once.Do(func() {
		l.bundle, l.err = l.load()
		if l.err != nil {
			l.logger.Error("artifact load failed", zap.Error(l.err))
		}
	})
	return l.bundle, l.err
}

func (l *Loader) load() (*Bundle, error) {
	if len(l.cfg.Models) == 0 {
		return nil, &ArtifactLoadError{Kind: "models", Err: errors.New("no models configured")}
	}

	var scaler ml.Scaler
	if err := l.timed("scaler", "", l.cfg.Scaler, func() (err error) {
		scaler, err = ml.LoadScaler(l.cfg.Scaler)
		return err
	}); err != nil {
		return nil, err
	}

	var encoder *ml.LabelEncoder
	if err := l.timed("label encoder", "", l.cfg.LabelEncoder, func() (err error) {
		encoder, err = ml.LoadLabelEncoder(l.cfg.LabelEncoder)
		return err
	}); err != nil {
		return nil, err
	}

	registry := newRegistry()
	for _, spec := range l.cfg.Models {
		var model ml.Classifier
		if err := l.timed("model", spec.Name, spec.Path, func() (err error) {
			model, err = ml.LoadModel(spec.Type, spec.Path)
			return err
		}); err != nil {
			return nil, err
		}
		if err := registry.add(spec.Name, model); err != nil {
			return nil, &ArtifactLoadError{Kind: "model", Name: spec.Name, Path: spec.Path, Err: err}
		}
	}

	if err := risk.CheckArtifacts(scaler, encoder, registry.Models()); err != nil {
		return nil, &ArtifactLoadError{Kind: "artifacts", Err: fmt.Errorf("inconsistent artifacts: %w", err)}
	}

	l.logger.Info("artifacts loaded",
		zap.Strings("models", registry.Names()),
		zap.Strings("classes", encoder.Classes()),
	)
	return &Bundle{Scaler: scaler, Encoder: encoder, Registry: registry}, nil
}

func (l *Loader) timed(kind, name, path string, load func() error) error {
	start := time.Now()
	if err := load(); err != nil {
		return &ArtifactLoadError{Kind: kind, Name: name, Path: path, Err: err}
	}
	l.logger.Debug("artifact loaded",
		zap.String("kind", kind),
		zap.String("name", name),
		zap.String("path", path),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
