package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"maternalrisk/artifacts"
	"maternalrisk/logging"
)

type Config struct {
	Artifacts artifacts.Config `yaml:"artifacts"`
	Log       logging.Config   `yaml:"log"`
	Engine    struct {
		CacheSize int `yaml:"cache_size"`
	} `yaml:"engine"`
	UI struct {
		Language string `yaml:"language"`
		// Model preselects one model; empty shows the full comparison.
		Model string `yaml:"model"`
	} `yaml:"ui"`
}

// Load decodes path and resolves relative artifact paths against the
// directory holding the config file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	if len(config.Artifacts.Models) == 0 {
		return nil, errors.New("config: artifacts.models is empty")
	}

	dir := filepath.Dir(path)
	config.Artifacts.Scaler = resolve(dir, config.Artifacts.Scaler)
	config.Artifacts.LabelEncoder = resolve(dir, config.Artifacts.LabelEncoder)
	for i := range config.Artifacts.Models {
		config.Artifacts.Models[i].Path = resolve(dir, config.Artifacts.Models[i].Path)
	}
	if config.Log.File != "" {
		config.Log.File = resolve(dir, config.Log.File)
	}
	if config.UI.Language == "" {
		config.UI.Language = "en"
	}
	return &config, nil
}

// Locate returns path, or the same file one directory up when run from cmd/.
func Locate(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) && !filepath.IsAbs(path) {
		return filepath.Join("..", path)
	}
	return path
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
