package validation

import (
	"fmt"

	"github.com/jonathan/ats-engine/internal/types"
)

// LengthRule warns on entries exceeding the configured character count.
// Overlong bullets wrap awkwardly and risk truncation in ATS parsers.
type LengthRule struct {
	MaxChars int
}

// ID returns the rule identifier.
func (r *LengthRule) ID() string { return "entry_length" }

// Check measures the entry in runes, not bytes.
func (r *LengthRule) Check(entry types.Entry) []types.RuleViolation {
	if r.MaxChars <= 0 {
		return nil
	}
	length := len([]rune(entry.Text))
	if length <= r.MaxChars {
		return nil
	}
	return []types.RuleViolation{{
		RuleID:   r.ID(),
		Severity: types.SeverityWarning,
		Message:  fmt.Sprintf("entry has %d characters, maximum is %d", length, r.MaxChars),
	}}
}
