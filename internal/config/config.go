package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one load-and-split run.
type Config struct {
	Data  string `yaml:"data"`
	Split struct {
		LimitNgrams   int      `yaml:"limit_ngrams"`
		DropFeatures  []string `yaml:"drop_features"`
		DropLanguages []string `yaml:"drop_languages"`
		TestSize      float64  `yaml:"test_size"`
		RandomState   int64    `yaml:"random_state"`
		Stratify      bool     `yaml:"stratify"`
	} `yaml:"split"`
	Output string `yaml:"output"`
}

func Default() *Config {
	cfg := &Config{
		Output: "splits",
	}
	cfg.Split.TestSize = 0.25
	cfg.Split.RandomState = 42
	return cfg
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	return cfg, nil
}
