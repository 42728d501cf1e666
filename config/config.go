// Package config reads the server configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the walkpath server.
type Config struct {
	Listen               string        `yaml:"listen"`
	AreasDir             string        `yaml:"areas_dir"`
	Watch                bool          `yaml:"watch"`
	SimplifyTolerance    float64       `yaml:"simplify_tolerance"`
	RemoveContainedHoles bool          `yaml:"remove_contained_holes"`
	QueryTimeout         time.Duration `yaml:"query_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:       ":8080",
		AreasDir:     "walkareas",
		QueryTimeout: 2 * time.Second,
	}
}

// Load reads path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("listen is empty"))
	}
	if c.AreasDir == "" {
		errs = append(errs, errors.New("areas_dir is empty"))
	}
	if c.SimplifyTolerance < 0 {
		errs = append(errs, fmt.Errorf("simplify_tolerance %v is negative", c.SimplifyTolerance))
	}
	if c.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("query_timeout %v must be positive", c.QueryTimeout))
	}
	return errors.Join(errs...)
}
