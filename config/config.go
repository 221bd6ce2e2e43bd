// Package config provides configuration loading and management for the
// HPVCO toolkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uthealth/hpvco/vocabulary/hpvco"
)

// Config represents the complete toolkit configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Validation ValidateConfig `yaml:"validate"`
	NATS     NATSConfig     `yaml:"nats"`
	Serve    ServeConfig    `yaml:"serve"`
}

// OntologyConfig locates the ontology document
type OntologyConfig struct {
	// URL is the permanent URL of the published document
	URL string `yaml:"url"`
	// LocalGlobs lists glob patterns for local ontology files; when any
	// match, local files take precedence over the URL
	LocalGlobs []string `yaml:"local_globs"`
	// CacheDir is where fetched documents are written (empty = no cache)
	CacheDir string `yaml:"cache_dir"`
}

// FetchConfig configures document retrieval
type FetchConfig struct {
	// Timeout is the per-attempt HTTP timeout
	Timeout time.Duration `yaml:"timeout"`
	// Retries is the number of additional attempts after a transport failure
	Retries int `yaml:"retries"`
	// UserAgent overrides the default User-Agent header
	UserAgent string `yaml:"user_agent"`
	// AllowLocal permits localhost and private-IP URLs (local mirrors)
	AllowLocal bool `yaml:"allow_local"`
}

// ValidateConfig configures the schema validator
type ValidateConfig struct {
	// ExternalNamespaces adds recognized namespace prefixes beyond the
	// standard set
	ExternalNamespaces []string `yaml:"external_namespaces"`
	// FailOnViolations makes the validate command exit non-zero when the
	// validator reports findings
	FailOnViolations bool `yaml:"fail_on_violations"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
}

// ServeConfig configures the HTTP API
type ServeConfig struct {
	// Addr is the listen address for the ontology API
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			URL: hpvco.DefaultDocumentURL,
		},
		Fetch: FetchConfig{
			Timeout: 30 * time.Second,
			Retries: 2,
		},
		NATS: NATSConfig{
			URL: "",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ontology.URL == "" && len(c.Ontology.LocalGlobs) == 0 {
		return fmt.Errorf("ontology.url or ontology.local_globs is required")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if other.Ontology.URL != "" {
		c.Ontology.URL = other.Ontology.URL
	}
	if len(other.Ontology.LocalGlobs) > 0 {
		c.Ontology.LocalGlobs = other.Ontology.LocalGlobs
	}
	if other.Ontology.CacheDir != "" {
		c.Ontology.CacheDir = other.Ontology.CacheDir
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.Retries != 0 {
		c.Fetch.Retries = other.Fetch.Retries
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}
	if other.Fetch.AllowLocal {
		c.Fetch.AllowLocal = true
	}

	// Validation
	if len(other.Validation.ExternalNamespaces) > 0 {
		c.Validation.ExternalNamespaces = other.Validation.ExternalNamespaces
	}
	if other.Validation.FailOnViolations {
		c.Validation.FailOnViolations = true
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}

	// Serve
	if other.Serve.Addr != "" {
		c.Serve.Addr = other.Serve.Addr
	}
}
