package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/standards"
	"github.com/jonathan/ats-engine/internal/types"
)

// passiveOpenings are auxiliary verbs that signal a passive-voice bullet.
var passiveOpenings = map[string]bool{
	"was": true, "were": true, "been": true, "being": true, "is": true, "are": true,
}

// ActionVerbRule classifies the first word of each entry against the verb
// tier table. Tier 1 and 2 pass silently; Tier 3 is info; unclassified or
// passive openings are a warning.
type ActionVerbRule struct {
	Tiers standards.VerbTiers
}

// ID returns the rule identifier.
func (r *ActionVerbRule) ID() string { return "action_verb_tier" }

// Check classifies the entry's opening verb.
func (r *ActionVerbRule) Check(entry types.Entry) []types.RuleViolation {
	words := strings.Fields(strings.ToLower(entry.Text))
	if len(words) == 0 {
		return nil
	}
	first := strings.Trim(words[0], ".,!?;:")

	if passiveOpenings[first] {
		return []types.RuleViolation{{
			RuleID:   r.ID(),
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("passive-voice opening %q; lead with an action verb", first),
		}}
	}

	switch r.Tiers[first] {
	case standards.Tier1, standards.Tier2:
		return nil
	case standards.Tier3:
		return []types.RuleViolation{{
			RuleID:   r.ID(),
			Severity: types.SeverityInfo,
			Message:  fmt.Sprintf("opening verb %q is Tier 3; a stronger verb reads better", first),
		}}
	default:
		return []types.RuleViolation{{
			RuleID:   r.ID(),
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("opening word %q is not a recognized action verb", first),
		}}
	}
}
