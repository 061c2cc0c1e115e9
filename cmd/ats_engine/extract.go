package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/extraction"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract weighted requirements from a job posting",
	Long:  "Extract gazetteer-matched requirement phrases from a job posting, weighted by category, position, and repetition, and print them as JSON.",
	RunE:  runExtract,
}

var (
	extractJobFile string
	extractJobURL  string
	extractOutFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file")
	extractCmd.Flags().StringVar(&extractJobURL, "job-url", "", "URL to fetch the job posting from")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	gazetteer, _, err := loadStandards(settings)
	if err != nil {
		return err
	}

	ctx := context.Background()
	jobText, err := loadJobText(ctx, extractJobFile, extractJobURL)
	if err != nil {
		return err
	}
	logger.Debug("loaded job posting", zap.Int("chars", len(jobText)))

	opts := extraction.DefaultOptions()
	opts.PositionalBonus = settings.PositionalBonus

	set, err := extraction.New(gazetteer, opts).Extract(jobText)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}
	logger.Info("extracted requirements",
		zap.Int("count", len(set.Requirements)),
		zap.Float64("total_weight", set.TotalWeight()),
	)

	return writeJSON(extractOutFile, set)
}

// writeJSON marshals v with indentation to a file, or stdout when path is
// empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
