// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Violation severities
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// DocumentLevelID is the sentinel entry ID used to key document-level
// violations (e.g. overall quantification ratio) in a ValidationReport.
const DocumentLevelID = "__document__"

// RuleViolation represents a single standards-rule failure
type RuleViolation struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ValidationReport maps entry IDs to the ordered violations raised against
// them. Rule violations are report data, not errors; a report is returned
// even when every rule fails.
type ValidationReport struct {
	Violations map[string][]RuleViolation `json:"violations"`
}

// NewValidationReport returns an empty report.
func NewValidationReport() *ValidationReport {
	return &ValidationReport{Violations: make(map[string][]RuleViolation)}
}

// Add appends a violation for the given entry ID (or DocumentLevelID).
func (r *ValidationReport) Add(entryID string, v RuleViolation) {
	r.Violations[entryID] = append(r.Violations[entryID], v)
}

// ForEntry returns the violations recorded for an entry ID, in rule order.
func (r *ValidationReport) ForEntry(entryID string) []RuleViolation {
	return r.Violations[entryID]
}

// EntryIDs returns the IDs carrying violations, sorted, with the
// document-level sentinel last.
func (r *ValidationReport) EntryIDs() []string {
	var ids []string
	docLevel := false
	for id := range r.Violations {
		if id == DocumentLevelID {
			docLevel = true
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if docLevel {
		ids = append(ids, DocumentLevelID)
	}
	return ids
}

// CountBySeverity returns the number of violations with the given severity.
func (r *ValidationReport) CountBySeverity(severity string) int {
	count := 0
	for _, violations := range r.Violations {
		for _, v := range violations {
			if v.Severity == severity {
				count++
			}
		}
	}
	return count
}

// Total returns the total number of violations in the report.
func (r *ValidationReport) Total() int {
	count := 0
	for _, violations := range r.Violations {
		count += len(violations)
	}
	return count
}
