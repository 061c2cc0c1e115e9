package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/document"
	"github.com/jonathan/ats-engine/internal/fetch"
	"github.com/jonathan/ats-engine/internal/standards"
	"github.com/jonathan/ats-engine/internal/types"
)

// loadSettings merges the optional config file over built-in defaults.
func loadSettings() (config.Config, error) {
	defaults := config.Defaults()
	if configPath == "" {
		return defaults, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return defaults, err
	}
	if err := fileCfg.Validate(); err != nil {
		return defaults, err
	}
	return fileCfg.MergeWithDefaults(defaults), nil
}

// loadStandards returns the gazetteer and verb tiers, from the configured
// table files when set, otherwise the built-in defaults.
func loadStandards(settings config.Config) (*standards.Gazetteer, standards.VerbTiers, error) {
	gazetteer := standards.DefaultGazetteer()
	verbTiers := standards.DefaultVerbTiers()

	if settings.Gazetteer != "" {
		loaded, err := standards.LoadGazetteer(settings.Gazetteer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load gazetteer: %w", err)
		}
		gazetteer = loaded
	}
	if settings.VerbTiers != "" {
		loaded, err := standards.LoadVerbTiers(settings.VerbTiers)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load verb tiers: %w", err)
		}
		verbTiers = loaded
	}

	return gazetteer, verbTiers, nil
}

// loadResume reads a résumé text file and parses it into a document.
func loadResume(path string) (*types.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("résumé path is required (use --resume)")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read résumé file: %w", err)
	}
	doc, err := document.FromText(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse résumé: %w", err)
	}
	return doc, nil
}

// loadJobText returns job posting text from a file or by fetching a URL.
// Exactly one source must be given.
func loadJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	switch {
	case jobFile != "" && jobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	case jobFile != "":
		content, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(content), nil
	case jobURL != "":
		return fetch.JobPosting(ctx, jobURL, nil)
	default:
		return "", fmt.Errorf("must provide --job or --job-url")
	}
}

// resolveAPIKey prefers the explicit setting over the environment.
func resolveAPIKey(settings config.Config) string {
	if settings.APIKey != "" {
		return settings.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}
