// Package config provides loading and validation for scoring configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Weights holds the relative importance of each score component. The defaults
// sum to 1.0; that convention is documented but not enforced at runtime.
type Weights struct {
	RequiredSkills  float64 `json:"required_skills" validate:"gte=0,lte=1"`
	PreferredSkills float64 `json:"preferred_skills" validate:"gte=0,lte=1"`
	Experience      float64 `json:"experience" validate:"gte=0,lte=1"`
	KeywordDensity  float64 `json:"keyword_density" validate:"gte=0,lte=1"`
}

// Config represents the scoring configuration loadable from a JSON file.
type Config struct {
	Weights Weights `json:"weights"`
	// MinScore is the default threshold (0-100) below which candidates are
	// filtered out. Zero disables filtering.
	MinScore float64 `json:"min_score" validate:"gte=0,lte=100"`
	// ExperienceTolerance is how many years below the stated requirement still
	// earn a softened (not proportional) experience score.
	ExperienceTolerance int `json:"experience_tolerance" validate:"gte=0"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		Weights: Weights{
			RequiredSkills:  0.50,
			PreferredSkills: 0.25,
			Experience:      0.15,
			KeywordDensity:  0.10,
		},
		MinScore:            0.0,
		ExperienceTolerance: 2,
	}
}

// Load reads configuration from a JSON file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from path, falling back to defaults when
// the path is empty or the file is missing or invalid. A bad config file must
// never fail a screening run.
func LoadOrDefault(path string) *Config {
	if path == "" {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks field ranges using the validator tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
