package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// NgramConfig holds ngram-stage defaults loadable from corpusforge.yaml.
type NgramConfig struct {
	DefaultN         int    `yaml:"defaultN"`
	DefaultChunkSize string `yaml:"defaultChunkSize"`
}

// CollocationConfig holds collocation-stage defaults.
type CollocationConfig struct {
	DefaultChunkSize string `yaml:"defaultChunkSize"`
	DefaultThreads   int    `yaml:"defaultThreads"`
}

// TokenizerConfig holds tokenizer-stage defaults.
type TokenizerConfig struct {
	Keep string `yaml:"keep"`
}

// FilterConfig holds countfilter-stage defaults.
type FilterConfig struct {
	DefaultThreshold uint64 `yaml:"defaultThreshold"`
}

// Config is the top-level shape of corpusforge.yaml.
type Config struct {
	Ngram       NgramConfig       `yaml:"ngram"`
	Collocation CollocationConfig `yaml:"collocation"`
	Tokenizer   TokenizerConfig   `yaml:"tokenizer"`
	Filter      FilterConfig      `yaml:"filter"`
}

// defaultConfig supplies built-in defaults, applied when corpusforge.yaml
// is absent or leaves a field at its zero value.
func defaultConfig() Config {
	return Config{
		Ngram:       NgramConfig{DefaultN: 2, DefaultChunkSize: "64m"},
		Collocation: CollocationConfig{DefaultChunkSize: "64m", DefaultThreads: 4},
		Filter:      FilterConfig{DefaultThreshold: 5},
	}
}

// LoadConfig reads corpusforge.yaml from configPath, if present. A
// missing file is not an error: corpusforge's config is optional, so
// the built-in defaults apply.
func LoadConfig() (Config, error) {
	result := defaultConfig()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return result, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
