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
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to résumé text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from

	// Standards tables (empty means the built-in defaults)
	Gazetteer string `json:"gazetteer,omitempty"`  // Path to a gazetteer JSON file
	VerbTiers string `json:"verb_tiers,omitempty"` // Path to an action-verb tier JSON file

	// Tunables. MaxEditDistance is a pointer because 0 is a meaningful
	// value (fuzzy matching disabled) that must survive the defaults merge.
	PositionalBonus     float64 `json:"positional_bonus,omitempty" validate:"omitempty,gte=1"`          // Weight multiplier inside requirements zones
	MaxEditDistance     *int    `json:"max_edit_distance,omitempty" validate:"omitempty,min=0,max=2"`   // Edit distance for near-match partial credit
	QuantificationRatio float64 `json:"quantification_ratio,omitempty" validate:"omitempty,gt=0,lte=1"` // Required share of quantified entries
	MinQuantSample      int     `json:"min_quant_sample,omitempty" validate:"omitempty,min=1"`          // Entry count below which quantification is exempt
	MaxEntryChars       int     `json:"max_entry_chars,omitempty" validate:"omitempty,min=1"`           // Length ceiling per entry

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Gemini model name
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for version history
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
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("config error: field %s failed %s validation", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"resume":     c.Resume,
		"job":        c.Job,
		"gazetteer":  c.Gazetteer,
		"verb_tiers": c.VerbTiers,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Gazetteer == "" {
		result.Gazetteer = defaults.Gazetteer
	}
	if result.VerbTiers == "" {
		result.VerbTiers = defaults.VerbTiers
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Pointer fields: nil means unset, so an explicit 0 survives the merge
	if result.MaxEditDistance == nil {
		result.MaxEditDistance = defaults.MaxEditDistance
	}

	// Numeric fields: use default if zero
	if result.PositionalBonus == 0 {
		result.PositionalBonus = defaults.PositionalBonus
	}
	if result.QuantificationRatio == 0 {
		result.QuantificationRatio = defaults.QuantificationRatio
	}
	if result.MinQuantSample == 0 {
		result.MinQuantSample = defaults.MinQuantSample
	}
	if result.MaxEntryChars == 0 {
		result.MaxEntryChars = defaults.MaxEntryChars
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EditDistance returns the partial-credit edit distance, defaulting to 1
// when the field was never set.
func (c *Config) EditDistance() int {
	if c.MaxEditDistance == nil {
		return 1
	}
	return *c.MaxEditDistance
}

// Defaults returns the built-in tunable defaults.
func Defaults() Config {
	editDistance := 1
	return Config{
		PositionalBonus:     1.5,
		MaxEditDistance:     &editDistance,
		QuantificationRatio: 0.8,
		MinQuantSample:      3,
		MaxEntryChars:       200,
		Model:               "gemini-1.5-flash",
	}
}
