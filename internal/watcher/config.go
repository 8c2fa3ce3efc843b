package watcher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the directory watch mode. Loaded from a YAML file.
type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Lang        LangConfig        `yaml:"lang"`
	Performance PerformanceConfig `yaml:"performance"`
	Limits      LimitsConfig      `yaml:"limits"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LangConfig struct {
	SidecarURL string `yaml:"sidecar_url"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LimitsConfig struct {
	MaxTextBytes int `yaml:"max_text_bytes"`
}

// LoadConfig reads and validates a watch-mode config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		c.Paths.Output = c.Paths.Input
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Limits.MaxTextBytes <= 0 {
		c.Limits.MaxTextBytes = 10485760
	}
	return nil
}
