package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func docWith(texts ...string) *types.Document {
	entries := make([]types.Entry, len(texts))
	for i, text := range texts {
		entries[i] = types.Entry{
			ID:      "e" + string(rune('1'+i)),
			Text:    text,
			Section: "experience",
		}
	}
	return &types.Document{
		Version:  1,
		Sections: []types.Section{{Name: "experience", Entries: entries}},
	}
}

func TestForbiddenPhraseRule(t *testing.T) {
	rule := &ForbiddenPhraseRule{Phrases: []string{"responsible for", "worked on"}}

	violations := rule.Check(types.Entry{ID: "e1", Text: "Responsible for managing the team"})
	require.Len(t, violations, 1)
	assert.Equal(t, "forbidden_phrase", violations[0].RuleID)
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "responsible for")

	assert.Empty(t, rule.Check(types.Entry{ID: "e2", Text: "Led the team to a 30% throughput gain"}))
}

func TestActionVerbRule(t *testing.T) {
	rule := &ActionVerbRule{Tiers: DefaultConfig().VerbTiers}

	tests := []struct {
		text         string
		wantCount    int
		wantSeverity string
	}{
		{"Architected the billing platform", 0, ""},
		{"Developed internal tooling", 0, ""},
		{"Helped with releases", 1, types.SeverityInfo},
		{"Responsible for deployments", 1, types.SeverityWarning},
		{"Was assigned to the infra team", 1, types.SeverityWarning},
	}

	for _, tt := range tests {
		violations := rule.Check(types.Entry{ID: "e1", Text: tt.text})
		require.Len(t, violations, tt.wantCount, "text %q", tt.text)
		if tt.wantCount > 0 {
			assert.Equal(t, tt.wantSeverity, violations[0].Severity, "text %q", tt.text)
		}
	}
}

func TestHasMetric(t *testing.T) {
	metric := []string{
		"Cut costs by 40%",
		"Saved $1.2M annually",
		"Delivered 3x faster builds",
		"Shipped in 6 weeks",
		"Onboarded 50 customers",
	}
	for _, text := range metric {
		assert.True(t, HasMetric(text), "expected metric in %q", text)
	}

	noMetric := []string{
		"Improved the release process",
		"Collaborated with design and product",
	}
	for _, text := range noMetric {
		assert.False(t, HasMetric(text), "unexpected metric in %q", text)
	}
}

func TestQuantificationRule_FiresAtDocumentLevel(t *testing.T) {
	// 2 of 5 entries quantified: 2 < floor(0.8*5)=4, fires with warning.
	doc := docWith(
		"Increased revenue by 25%",
		"Managed a team of 8 engineers",
		"Improved the deployment process",
		"Collaborated across departments",
		"Mentored junior developers",
	)

	report := New(nil).Validate(doc)
	violations := report.ForEntry(types.DocumentLevelID)
	require.Len(t, violations, 1)
	assert.Equal(t, "quantification", violations[0].RuleID)
	assert.Equal(t, types.SeverityWarning, violations[0].Severity)
}

func TestQuantificationRule_SmallDocumentExempt(t *testing.T) {
	doc := docWith("Improved things", "Fixed stuff")

	report := New(nil).Validate(doc)
	assert.Empty(t, report.ForEntry(types.DocumentLevelID))
}

func TestQuantificationRule_PassesWhenDense(t *testing.T) {
	doc := docWith(
		"Increased revenue by 25%",
		"Managed a team of 8 engineers",
		"Cut build times 3x",
	)

	report := New(nil).Validate(doc)
	assert.Empty(t, report.ForEntry(types.DocumentLevelID))
}

func TestSpecificityRule(t *testing.T) {
	rule := &SpecificityRule{}

	violations := rule.Check(types.Entry{ID: "e1", Text: "Negotiated vendor contracts worth $45K-$55K"})
	require.Len(t, violations, 1)
	assert.Equal(t, types.SeverityWarning, violations[0].Severity)

	violations = rule.Check(types.Entry{ID: "e2", Text: "Cut error rates by 10-20%"})
	assert.Len(t, violations, 1)

	// Plain year spans are not metric ranges.
	assert.Empty(t, rule.Check(types.Entry{ID: "e3", Text: "Platform lead 2019-2021"}))
	assert.Empty(t, rule.Check(types.Entry{ID: "e4", Text: "Saved $50K annually"}))
}

func TestLengthRule(t *testing.T) {
	rule := &LengthRule{MaxChars: 40}

	assert.Empty(t, rule.Check(types.Entry{ID: "e1", Text: "Short and sweet"}))

	violations := rule.Check(types.Entry{ID: "e2", Text: strings.Repeat("long ", 20)})
	require.Len(t, violations, 1)
	assert.Equal(t, "entry_length", violations[0].RuleID)
	assert.Equal(t, types.SeverityWarning, violations[0].Severity)
}

func TestValidate_RulesAreIndependent(t *testing.T) {
	// A forbidden phrase and a weak verb on the same entry fire
	// independently; neither suppresses the other.
	doc := docWith(
		"Responsible for managing the team",
		"Architected the data platform serving 2M users",
		"Increased uptime to 99.9%",
	)

	report := New(nil).Validate(doc)

	first := report.ForEntry("e1")
	ruleIDs := make([]string, 0, len(first))
	for _, v := range first {
		ruleIDs = append(ruleIDs, v.RuleID)
	}
	assert.Contains(t, ruleIDs, "forbidden_phrase")
	assert.Contains(t, ruleIDs, "action_verb_tier")

	// Clean entries produce no violations.
	assert.Empty(t, report.ForEntry("e2"))
	assert.Empty(t, report.ForEntry("e3"))
}

func TestValidate_ReportCounts(t *testing.T) {
	doc := docWith(
		"Responsible for managing the team",
		"Assisted with releases",
		"Improved the build",
	)

	report := New(nil).Validate(doc)
	assert.Equal(t, 1, report.CountBySeverity(types.SeverityError))
	assert.GreaterOrEqual(t, report.CountBySeverity(types.SeverityWarning), 2)
	assert.Equal(t, 1, report.CountBySeverity(types.SeverityInfo))
}
