package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"jobscout/internal/filter"
)

const (
	defaultOutput      = "jobs_data.xlsx"
	defaultQuery       = "Data Analyst"
	defaultHTTPTimeout = 10 * time.Second
)

// Config is the root configuration for a jobscout run. Entry points overlay
// their flag or form values on top of it before handing the result to the
// pipeline.
type Config struct {
	IncludeKeywords []string
	ExcludeKeywords []string
	Countries       []string
	Query           string
	Output          string
	HTTPTimeout     time.Duration
	Retry           bool
}

// rawConfig is used for YAML unmarshaling (snake_case fields, duration as
// string).
type rawConfig struct {
	IncludeKeywords []string `yaml:"include_keywords"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
	Countries       []string `yaml:"countries"`
	Query           string   `yaml:"query"`
	Output          string   `yaml:"output"`
	HTTPTimeout     string   `yaml:"http_timeout"`
	Retry           *bool    `yaml:"retry"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		IncludeKeywords: filter.DefaultIncludeKeywords,
		ExcludeKeywords: filter.DefaultExcludeKeywords,
		Query:           defaultQuery,
		Output:          defaultOutput,
		HTTPTimeout:     defaultHTTPTimeout,
		Retry:           true,
	}
}

// Load reads and parses the YAML config file at path, fills defaults for
// omitted fields, validates, and returns the Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.IncludeKeywords != nil {
		cfg.IncludeKeywords = raw.IncludeKeywords
	}
	if raw.ExcludeKeywords != nil {
		cfg.ExcludeKeywords = raw.ExcludeKeywords
	}
	if raw.Countries != nil {
		cfg.Countries = raw.Countries
	}
	if raw.Query != "" {
		cfg.Query = raw.Query
	}
	if raw.Output != "" {
		cfg.Output = raw.Output
	}
	if raw.HTTPTimeout != "" {
		d, err := time.ParseDuration(raw.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse http_timeout %q: %w", raw.HTTPTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	if raw.Retry != nil {
		cfg.Retry = *raw.Retry
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %v", cfg.HTTPTimeout)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
