package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/generator"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/validation"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Generate rewrite proposals for flagged résumé entries",
	Long:  "Scan a résumé against a job posting, then ask the generator for one rewrite proposal per flagged entry. Proposals are written out pending review; nothing is applied.",
	RunE:  runOptimize,
}

var (
	optimizeResumeFile string
	optimizeJobFile    string
	optimizeJobURL     string
	optimizeOutFile    string
	optimizeOffline    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResumeFile, "resume", "r", "", "Path to résumé text file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job", "j", "", "Path to job posting text file")
	optimizeCmd.Flags().StringVar(&optimizeJobURL, "job-url", "", "URL to fetch the job posting from")
	optimizeCmd.Flags().StringVarP(&optimizeOutFile, "out", "o", "", "Path to output proposals JSON file (default: stdout)")
	optimizeCmd.Flags().BoolVar(&optimizeOffline, "offline", false, "Use the deterministic stub generator instead of the API")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	gazetteer, verbTiers, err := loadStandards(settings)
	if err != nil {
		return err
	}

	doc, err := loadResume(optimizeResumeFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	jobText, err := loadJobText(ctx, optimizeJobFile, optimizeJobURL)
	if err != nil {
		return err
	}

	opts := extraction.DefaultOptions()
	opts.PositionalBonus = settings.PositionalBonus
	set, err := extraction.New(gazetteer, opts).Extract(jobText)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}

	match := scoring.New(&scoring.Options{MaxEditDistance: settings.EditDistance()}).Score(doc, set)

	cfg := validation.DefaultConfig()
	cfg.VerbTiers = verbTiers
	cfg.QuantificationRatio = settings.QuantificationRatio
	cfg.MinQuantSample = settings.MinQuantSample
	cfg.MaxEntryChars = settings.MaxEntryChars
	violations := validation.New(cfg).Validate(doc)

	var client generator.Client
	if optimizeOffline {
		client = generator.NewStubClient()
	} else {
		apiKey := resolveAPIKey(settings)
		if apiKey == "" {
			return fmt.Errorf("API key is required (set GEMINI_API_KEY or api_key in the config, or pass --offline)")
		}
		client, err = generator.NewGeminiClient(ctx, &generator.Config{Model: settings.Model}, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create generator client: %w", err)
		}
	}
	defer func() { _ = client.Close() }()

	proposals, err := generator.ProposeBatch(ctx, client, doc, violations, match)
	if err != nil {
		return fmt.Errorf("failed to generate proposals: %w", err)
	}
	logger.Info("generated proposals", zap.Int("count", len(proposals)))

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range proposals {
			printer.PrintProposal(&proposals[i])
		}
	}

	return writeJSON(optimizeOutFile, proposals)
}
