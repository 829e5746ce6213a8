// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Inputs
	Resume   string `json:"resume,omitempty"`                           // Path to resume file (.txt, .md, .pdf, .docx)
	Job      string `json:"job,omitempty"`                              // Path to job description file
	JobURL   string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	Taxonomy string `json:"taxonomy,omitempty"`                         // Path to a skill taxonomy JSON file

	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for analysis artifacts

	// Behavior
	APIKey              string  `json:"api_key,omitempty"`                                     // Gemini API key
	UseBrowser          bool    `json:"use_browser,omitempty"`                                 // Use headless browser for SPA job boards
	Verbose             bool    `json:"verbose,omitempty"`                                     // Print detailed debug information
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"` // Fuzzy match cutoff
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values. Required fields
// are not checked here; they are enforced by CLI flag validation after
// merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for field, path := range map[string]string{
		"resume":   c.Resume,
		"job":      c.Job,
		"taxonomy": c.Taxonomy,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", field, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = defaults.SimilarityThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// APIKeyFromEnv resolves the API key from the config, then the environment.
// PROJECTBRIDGE_API_KEY wins over GEMINI_API_KEY.
func (c *Config) APIKeyFromEnv() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if key := os.Getenv("PROJECTBRIDGE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}
