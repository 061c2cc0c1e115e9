package validation

import (
	"fmt"
	"regexp"

	"github.com/jonathan/ats-engine/internal/types"
)

// rangePattern matches metric ranges like "$45K-$55K" or "10-20%". At least
// one side must carry a metric marker ($, %, or a K/M/B suffix) so plain
// year spans like "2019-2021" are not flagged.
var rangePattern = regexp.MustCompile(
	`(\$\s?\d[\d,]*(\.\d+)?\s*[kKmMbB]?|\d+(\.\d+)?\s*[%kKmMbB])\s*[-–—]\s*(\$\s?)?\d[\d,]*(\.\d+)?\s*[kKmMbB%]?`)

// SpecificityRule flags metrics expressed as ranges. Ranges still count
// toward the quantification rule; this warning nudges toward a single
// value, which reads as more credible.
type SpecificityRule struct{}

// ID returns the rule identifier.
func (r *SpecificityRule) ID() string { return "specificity" }

// Check flags range-form metrics in the entry.
func (r *SpecificityRule) Check(entry types.Entry) []types.RuleViolation {
	match := rangePattern.FindString(entry.Text)
	if match == "" {
		return nil
	}
	return []types.RuleViolation{{
		RuleID:   r.ID(),
		Severity: types.SeverityWarning,
		Message:  fmt.Sprintf("metric range %q; prefer a single value", match),
	}}
}
