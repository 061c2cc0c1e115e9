package validation

import (
	"fmt"
	"regexp"

	"github.com/jonathan/ats-engine/internal/types"
)

// metricPatterns recognize quantified achievements: percentages, currency
// amounts, multipliers, time durations and counts with a unit word.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent)`),
	regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?\s*[kKmMbB]?`),
	regexp.MustCompile(`\b\d+(\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*(\.\d+)?[kmb]\b`),
	regexp.MustCompile(`(?i)\b\d+\+?\s*(years?|months?|weeks?|days?|hours?|minutes?)\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s+[a-z]+\b`),
}

// HasMetric reports whether text contains a quantified achievement.
func HasMetric(text string) bool {
	for _, pattern := range metricPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// QuantificationRule is a document-level rule: it fires a warning when
// fewer than Ratio of the entries contain a metric. Documents with fewer
// than MinSample entries are exempt.
type QuantificationRule struct {
	Ratio     float64
	MinSample int
}

// ID returns the rule identifier.
func (r *QuantificationRule) ID() string { return "quantification" }

// CheckDocument computes the quantification rate across all entries.
func (r *QuantificationRule) CheckDocument(doc *types.Document) []types.RuleViolation {
	entries := doc.Entries()
	if len(entries) < r.MinSample {
		return nil
	}

	quantified := 0
	for _, entry := range entries {
		if HasMetric(entry.Text) {
			quantified++
		}
	}

	required := int(r.Ratio * float64(len(entries))) // rounded down
	if quantified >= required {
		return nil
	}

	return []types.RuleViolation{{
		RuleID:   r.ID(),
		Severity: types.SeverityWarning,
		Message: fmt.Sprintf(
			"only %d of %d entries contain a metric; aim for at least %d (%.0f%%)",
			quantified, len(entries), required, r.Ratio*100,
		),
	}}
}
