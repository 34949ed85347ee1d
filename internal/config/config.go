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
	Input   string `json:"input,omitempty"`   // Path to resume text file, or a directory for batch runs
	Output  string `json:"output,omitempty"`  // Path to write the extracted JSON record (stdout when empty)
	Lexicon string `json:"lexicon,omitempty"` // Path to a YAML lexicon override

	// Behavior
	Workers   int    `json:"workers,omitempty"`    // Batch parallelism; 0 means one worker per CPU
	Verbose   bool   `json:"verbose,omitempty"`    // Print a record summary after extraction
	Pretty    bool   `json:"pretty,omitempty"`     // Indent JSON output
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level: debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // "json" or "pretty"
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
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.LogFormat)
	}

	// Validate file paths exist (if specified)
	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input path not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
