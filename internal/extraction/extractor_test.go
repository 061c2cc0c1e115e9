package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/standards"
	"github.com/jonathan/ats-engine/internal/types"
)

func testGazetteer() *standards.Gazetteer {
	return &standards.Gazetteer{
		Skills:         []string{"distributed systems", "python"},
		Tools:          []string{"kubernetes", "postgresql"},
		Certifications: []string{"aws certified"},
		Seniority:      []string{"senior"},
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	for _, input := range []string{"", "   \n\t  ", "!!! --- ???"} {
		_, err := extractor.Extract(input)
		require.Error(t, err, "input %q", input)

		var empty *EmptyInputError
		assert.ErrorAs(t, err, &empty)
	}
}

func TestExtract_NoGazetteerHits(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	_, err := extractor.Extract("We sell artisanal cheese to local restaurants.")
	require.Error(t, err)

	var empty *EmptyInputError
	assert.ErrorAs(t, err, &empty)
}

func TestExtract_CategoriesAndNormalization(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	set, err := extractor.Extract("Senior engineer working with Distributed Systems and PostgreSQL.")
	require.NoError(t, err)

	byPhrase := make(map[string]types.Requirement)
	for _, req := range set.Requirements {
		byPhrase[req.Phrase] = req
	}

	require.Contains(t, byPhrase, "distributed system") // singularized
	assert.Equal(t, types.CategorySkill, byPhrase["distributed system"].Category)
	assert.Equal(t, types.CategoryTool, byPhrase["postgresql"].Category)
	assert.Equal(t, types.CategorySeniority, byPhrase["senior"].Category)
}

func TestExtract_PositionalBonus(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	plain, err := extractor.Extract("We use Kubernetes every day.")
	require.NoError(t, err)

	boosted, err := extractor.Extract("Requirements:\nKubernetes experience.")
	require.NoError(t, err)

	assert.InDelta(t, 0.9, plain.Requirements[0].Weight, 1e-9)
	assert.InDelta(t, 0.9*1.5, boosted.Requirements[0].Weight, 1e-9)
}

func TestExtract_ZoneEndsAtNextHeader(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	set, err := extractor.Extract("Requirements:\nPython fluency.\nBenefits:\nKubernetes club membership.")
	require.NoError(t, err)

	byPhrase := make(map[string]float64)
	for _, req := range set.Requirements {
		byPhrase[req.Phrase] = req.Weight
	}

	assert.InDelta(t, 1.5, byPhrase["python"], 1e-9)     // inside zone
	assert.InDelta(t, 0.9, byPhrase["kubernete"], 1e-9)  // after zone ended
}

func TestExtract_PhrasesOnHeaderLine(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	// Phrases packed onto the header line itself count, with the zone bonus.
	set, err := extractor.Extract("Requirements: Python and Kubernetes experience")
	require.NoError(t, err)

	byPhrase := make(map[string]float64)
	for _, req := range set.Requirements {
		byPhrase[req.Phrase] = req.Weight
	}

	require.Contains(t, byPhrase, "python")
	require.Contains(t, byPhrase, "kubernete")
	assert.InDelta(t, 1.0*1.5, byPhrase["python"], 1e-9)
	assert.InDelta(t, 0.9*1.5, byPhrase["kubernete"], 1e-9)
}

func TestExtract_FrequencyBonusIsLogarithmicAndCapped(t *testing.T) {
	extractor := New(testGazetteer(), nil)

	twice, err := extractor.Extract("Python here. Python there.")
	require.NoError(t, err)
	// base 1.0 + 0.25*log2(2)
	assert.InDelta(t, 1.25, twice.Requirements[0].Weight, 1e-9)

	many, err := extractor.Extract(strings.Repeat("Python ", 100))
	require.NoError(t, err)
	// frequency bonus capped at 1.0
	assert.InDelta(t, 2.0, many.Requirements[0].Weight, 1e-9)
}

func TestExtract_Deterministic(t *testing.T) {
	extractor := New(testGazetteer(), nil)
	text := "Requirements:\nSenior engineer, Python, Kubernetes, AWS Certified."

	first, err := extractor.Extract(text)
	require.NoError(t, err)
	second, err := extractor.Extract(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
