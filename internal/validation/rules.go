// Package validation applies the fixed industry-standards rule set to
// résumé documents: verb tiering, quantification density, forbidden
// phrasing, metric specificity and entry length.
package validation

import (
	"github.com/jonathan/ats-engine/internal/standards"
	"github.com/jonathan/ats-engine/internal/types"
)

// EntryRule is a pure check over a single entry.
type EntryRule interface {
	ID() string
	Check(entry types.Entry) []types.RuleViolation
}

// DocumentRule is a pure check over the whole document.
type DocumentRule interface {
	ID() string
	CheckDocument(doc *types.Document) []types.RuleViolation
}

// Config holds the tunable thresholds for the standard rule set.
type Config struct {
	ForbiddenPhrases []string
	VerbTiers        standards.VerbTiers
	// QuantificationRatio is the minimum fraction of entries that must
	// contain a metric before the document-level rule fires.
	QuantificationRatio float64
	// MinQuantSample exempts documents with fewer entries than this.
	MinQuantSample int
	// MaxEntryChars is the per-entry length ceiling.
	MaxEntryChars int
}

// DefaultConfig returns the standard thresholds over the built-in tables.
func DefaultConfig() *Config {
	return &Config{
		ForbiddenPhrases:    standards.DefaultForbiddenPhrases(),
		VerbTiers:           standards.DefaultVerbTiers(),
		QuantificationRatio: 0.8,
		MinQuantSample:      3,
		MaxEntryChars:       200,
	}
}

// Validator runs an ordered list of independent rules. Every rule runs
// unconditionally against every entry; no rule suppresses another, and the
// report aggregates all output.
type Validator struct {
	entryRules []EntryRule
	docRules   []DocumentRule
}

// New builds a validator with the required rules registered in priority
// order. Nil config uses DefaultConfig.
func New(cfg *Config) *Validator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Validator{
		entryRules: []EntryRule{
			&ForbiddenPhraseRule{Phrases: cfg.ForbiddenPhrases},
			&ActionVerbRule{Tiers: cfg.VerbTiers},
			&SpecificityRule{},
			&LengthRule{MaxChars: cfg.MaxEntryChars},
		},
		docRules: []DocumentRule{
			&QuantificationRule{
				Ratio:     cfg.QuantificationRatio,
				MinSample: cfg.MinQuantSample,
			},
		},
	}
}

// Validate runs every rule and returns the aggregated report. Rule
// violations are report data, not errors; a report is returned even when
// every entry fails every rule.
func (v *Validator) Validate(doc *types.Document) *types.ValidationReport {
	report := types.NewValidationReport()

	for _, entry := range doc.Entries() {
		for _, rule := range v.entryRules {
			for _, violation := range rule.Check(entry) {
				report.Add(entry.ID, violation)
			}
		}
	}

	for _, rule := range v.docRules {
		for _, violation := range rule.CheckDocument(doc) {
			report.Add(types.DocumentLevelID, violation)
		}
	}

	return report
}
