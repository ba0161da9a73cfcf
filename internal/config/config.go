package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"polyping/internal/models"
)

const (
	DefaultRounds  = 5
	DefaultTimeout = 10 * time.Second
)

// Config holds all configuration for a latency run
type Config struct {
	Endpoints []models.Endpoint
	Rounds    int
	Timeout   time.Duration
	ChartPath string
	Verbose   bool
}

// fileConfig is the on-disk shape of an endpoint table
type fileConfig struct {
	Rounds    int               `yaml:"rounds"`
	Timeout   time.Duration     `yaml:"timeout"`
	Endpoints []models.Endpoint `yaml:"endpoints"`
}

// DefaultEndpoints returns the Polymarket API hosts in report order
func DefaultEndpoints() []models.Endpoint {
	return []models.Endpoint{
		{Name: "Gamma API", URL: "https://gamma-api.polymarket.com/markets?limit=1"},
		{Name: "CLOB API", URL: "https://clob.polymarket.com/time"},
		{Name: "Data API", URL: "https://data-api.polymarket.com/markets?limit=1"},
	}
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Endpoints: DefaultEndpoints(),
		Rounds:    DefaultRounds,
		Timeout:   DefaultTimeout,
	}
}

// LoadFile overlays the YAML endpoint table at path onto cfg.
// Keys missing from the file leave cfg untouched.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if fc.Rounds != 0 {
		cfg.Rounds = fc.Rounds
	}
	if fc.Timeout != 0 {
		cfg.Timeout = fc.Timeout
	}
	if len(fc.Endpoints) > 0 {
		cfg.Endpoints = fc.Endpoints
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint must be specified")
	}

	seen := make(map[string]bool, len(c.Endpoints))
	for i, ep := range c.Endpoints {
		if ep.Name == "" {
			return fmt.Errorf("endpoint %d: name cannot be empty", i+1)
		}
		if seen[ep.Name] {
			return fmt.Errorf("endpoint %q is listed more than once", ep.Name)
		}
		seen[ep.Name] = true

		u, err := url.Parse(ep.URL)
		if err != nil {
			return fmt.Errorf("endpoint %q: invalid url: %w", ep.Name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("endpoint %q: url must be an absolute http or https url", ep.Name)
		}
	}

	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
