// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied by MergeWithDefaults when neither the file nor a flag sets a value.
const (
	DefaultMaxInputBytes       int64 = 512 * 1024
	DefaultFetchTimeoutSeconds       = 30
	DefaultOutDir                    = "site"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume      string `json:"resume,omitempty"`       // Path to the resume document
	URL         string `json:"url,omitempty"`          // Portfolio page to clone
	TemplateDir string `json:"template_dir,omitempty"` // Directory holding a saved template.hbs
	Template    string `json:"template,omitempty"`     // Built-in theme or stored template name
	Name        string `json:"name,omitempty"`         // Name for a newly cloned template

	// Output
	OutDir     string `json:"out_dir,omitempty"`    // Directory the site is written to
	Stylesheet string `json:"stylesheet,omitempty"` // Stylesheet href linked from cloned pages
	Credit     string `json:"credit,omitempty"`     // Footer credit written into cloned pages

	// Limits
	MaxInputBytes       int64 `json:"max_input_bytes,omitempty"`       // Cap on resume documents and fetched pages
	FetchTimeoutSeconds int   `json:"fetch_timeout_seconds,omitempty"` // HTTP and browser timeout

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Render pages in a headless browser
	Save        bool   `json:"save,omitempty"`         // Persist profiles and templates
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// At most one template source
	sources := 0
	for _, s := range []string{c.URL, c.TemplateDir, c.Template} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'url', 'template_dir' and 'template' are mutually exclusive")
	}

	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config error: 'url' must be an absolute http(s) URL: %s", c.URL)
		}
	}

	// Validate numeric ranges
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_seconds' must be non-negative")
	}

	if c.Save && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'save' requires 'database_url' or DATABASE_URL")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" && !isRemote(c.Resume) {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.TemplateDir != "" {
		if info, err := os.Stat(c.TemplateDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}

	return nil
}

// isRemote reports whether a resume is given as an http(s) URL.
func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults. This is used to apply config file values as
// defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.OutDir == "" {
		result.OutDir = DefaultOutDir
	}
	if result.Stylesheet == "" {
		result.Stylesheet = defaults.Stylesheet
	}
	if result.Credit == "" {
		result.Credit = defaults.Credit
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = DefaultMaxInputBytes
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = DefaultFetchTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchTimeout returns FetchTimeoutSeconds as a duration, zero when unset.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
