package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// ForbiddenPhraseRule flags entries containing any phrase from the
// forbidden list. Case-insensitive substring match, error severity:
// these phrasings are passive filler that ATS reviewers screen out.
type ForbiddenPhraseRule struct {
	Phrases []string
}

// ID returns the rule identifier.
func (r *ForbiddenPhraseRule) ID() string { return "forbidden_phrase" }

// Check reports one violation per forbidden phrase found in the entry.
func (r *ForbiddenPhraseRule) Check(entry types.Entry) []types.RuleViolation {
	lower := strings.ToLower(entry.Text)

	var violations []types.RuleViolation
	for _, phrase := range r.Phrases {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		if normalized == "" {
			continue
		}
		if strings.Contains(lower, normalized) {
			violations = append(violations, types.RuleViolation{
				RuleID:   r.ID(),
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("contains forbidden phrase %q", phrase),
			})
		}
	}
	return violations
}
