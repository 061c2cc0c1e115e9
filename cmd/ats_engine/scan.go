package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/report"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/jonathan/ats-engine/internal/validation"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a résumé against a job posting and validate its standards",
	Long:  "Score a résumé against a job posting's extracted requirements and validate every entry against the writing standards, producing a combined summary.",
	RunE:  runScan,
}

var (
	scanResumeFile string
	scanJobFile    string
	scanJobURL     string
	scanOutFile    string
)

func init() {
	scanCmd.Flags().StringVarP(&scanResumeFile, "resume", "r", "", "Path to résumé text file (required)")
	scanCmd.Flags().StringVarP(&scanJobFile, "job", "j", "", "Path to job posting text file")
	scanCmd.Flags().StringVar(&scanJobURL, "job-url", "", "URL to fetch the job posting from")
	scanCmd.Flags().StringVarP(&scanOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
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

	doc, err := loadResume(scanResumeFile)
	if err != nil {
		return err
	}
	logger.Debug("parsed résumé", zap.Int("entries", len(doc.Entries())))

	ctx := context.Background()
	jobText, err := loadJobText(ctx, scanJobFile, scanJobURL)
	if err != nil {
		return err
	}

	opts := extraction.DefaultOptions()
	opts.PositionalBonus = settings.PositionalBonus
	set, err := extraction.New(gazetteer, opts).Extract(jobText)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}

	// Scoring and validation are independent reads of the same document.
	var match *types.MatchResult
	var violations *types.ValidationReport

	var g errgroup.Group
	g.Go(func() error {
		scorer := scoring.New(&scoring.Options{MaxEditDistance: settings.EditDistance()})
		match = scorer.Score(doc, set)
		return nil
	})
	g.Go(func() error {
		cfg := validation.DefaultConfig()
		cfg.VerbTiers = verbTiers
		cfg.QuantificationRatio = settings.QuantificationRatio
		cfg.MinQuantSample = settings.MinQuantSample
		cfg.MaxEntryChars = settings.MaxEntryChars
		violations = validation.New(cfg).Validate(doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("scan complete",
		zap.Float64("score", match.Score),
		zap.Int("violations", violations.Total()),
	)

	summary := report.Build(doc, match, violations)

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(match)
		printer.PrintValidationReport(violations)
		printer.PrintSummary(summary)
	}

	return writeJSON(scanOutFile, summary)
}
