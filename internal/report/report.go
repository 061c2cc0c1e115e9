// Package report assembles scan results into a summary suitable for
// rendering or export.
package report

import (
	"math"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/jonathan/ats-engine/internal/validation"
)

// Summary is the digest of one scan: the score, the requirement breakdown,
// the violation counts, and derived document stats.
type Summary struct {
	Score              float64  `json:"score"`
	Version            int      `json:"version"`
	EntryCount         int      `json:"entry_count"`
	MatchedCount       int      `json:"matched_count"`
	PartialCount       int      `json:"partial_count"`
	MissedCount        int      `json:"missed_count"`
	MissedPhrases      []string `json:"missed_phrases,omitempty"`
	Errors             int      `json:"errors"`
	Warnings           int      `json:"warnings"`
	Infos              int      `json:"infos"`
	QuantificationRate float64  `json:"quantification_rate"`
	Recommendations    []string `json:"recommendations,omitempty"`
}

// Build derives a summary from a scan's raw outputs.
func Build(doc *types.Document, match *types.MatchResult, report *types.ValidationReport) *Summary {
	summary := &Summary{Version: doc.Version}

	entries := doc.Entries()
	summary.EntryCount = len(entries)

	if match != nil {
		summary.Score = match.Score
		summary.MissedPhrases = match.MissedPhrases()
		for _, outcome := range match.Outcomes {
			switch {
			case outcome.Matched && outcome.Partial:
				summary.PartialCount++
			case outcome.Matched:
				summary.MatchedCount++
			default:
				summary.MissedCount++
			}
		}
	}

	if report != nil {
		summary.Errors = report.CountBySeverity(types.SeverityError)
		summary.Warnings = report.CountBySeverity(types.SeverityWarning)
		summary.Infos = report.CountBySeverity(types.SeverityInfo)
	}

	summary.QuantificationRate = quantificationRate(entries)
	summary.Recommendations = recommend(summary, report)

	return summary
}

// Flatten renders the summary as a flat map of primitives, for callers that
// export to spreadsheets or log aggregators.
func (s *Summary) Flatten() map[string]any {
	return map[string]any{
		"score":               s.Score,
		"version":             s.Version,
		"entry_count":         s.EntryCount,
		"matched_count":       s.MatchedCount,
		"partial_count":       s.PartialCount,
		"missed_count":        s.MissedCount,
		"errors":              s.Errors,
		"warnings":            s.Warnings,
		"infos":               s.Infos,
		"quantification_rate": s.QuantificationRate,
	}
}

// TopGaps returns up to n missed requirement phrases, in requirement order.
func (s *Summary) TopGaps(n int) []string {
	if n >= len(s.MissedPhrases) {
		return s.MissedPhrases
	}
	return s.MissedPhrases[:n]
}

// quantificationRate returns the share of entries carrying a metric,
// rounded to two decimals.
func quantificationRate(entries []types.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	quantified := 0
	for _, entry := range entries {
		if validation.HasMetric(entry.Text) {
			quantified++
		}
	}
	return math.Round(float64(quantified)/float64(len(entries))*100) / 100
}
