// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Candidates string `json:"candidates,omitempty"` // Path to candidate records JSON file
	Job        string `json:"job,omitempty"`        // Path to job record JSON file
	Output     string `json:"output,omitempty"`     // Output path; empty uses the suggested filename

	// Branding
	LogoURL     string `json:"logo_url,omitempty"`     // Header logo image URL (best effort)
	LogoLabel   string `json:"logo_label,omitempty"`   // Text fallback when the logo is unavailable
	LogoTimeout int    `json:"logo_timeout,omitempty"` // Logo fetch timeout in seconds

	// Behavior
	SkillKind string `json:"skill_kind,omitempty"` // "soft" or "technical"; empty renders both matrices
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed progress information
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
// Note: required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SkillKind != "" && c.SkillKind != "soft" && c.SkillKind != "technical" {
		return fmt.Errorf("config error: 'skill_kind' must be \"soft\" or \"technical\"")
	}
	if c.LogoTimeout < 0 {
		return fmt.Errorf("config error: 'logo_timeout' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.LogoURL == "" {
		result.LogoURL = defaults.LogoURL
	}
	if result.LogoLabel == "" {
		result.LogoLabel = defaults.LogoLabel
	}
	if result.SkillKind == "" {
		result.SkillKind = defaults.SkillKind
	}

	// Int fields: use default if zero
	if result.LogoTimeout == 0 {
		result.LogoTimeout = defaults.LogoTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
