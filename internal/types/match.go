// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementOutcome records whether a single requirement was found in the
// document, where, and how much it contributed to the total score.
type RequirementOutcome struct {
	Phrase         string  `json:"phrase"`
	Category       string  `json:"category"`
	Matched        bool    `json:"matched"`
	Partial        bool    `json:"partial,omitempty"`
	MatchedEntryID *string `json:"matched_entry_id,omitempty"`
	Contribution   float64 `json:"contribution"`
}

// MatchResult is the compatibility score between a document and a
// requirement set, with per-requirement detail. A pure derived value:
// recomputed on demand, never mutated in place.
type MatchResult struct {
	Score    float64              `json:"score"`
	Outcomes []RequirementOutcome `json:"outcomes"`
}

// MissedPhrases returns the phrases of all unmatched requirements,
// in requirement order.
func (m *MatchResult) MissedPhrases() []string {
	var missed []string
	for _, outcome := range m.Outcomes {
		if !outcome.Matched {
			missed = append(missed, outcome.Phrase)
		}
	}
	return missed
}
