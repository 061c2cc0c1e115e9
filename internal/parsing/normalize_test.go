package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Basic(t *testing.T) {
	tokens := Tokenize("Managed a team of 5 engineers")
	assert.Equal(t, []string{"managed", "a", "team", "of", "5", "engineers"}, tokens)
}

func TestTokenize_KeepsSkillCharacters(t *testing.T) {
	tokens := Tokenize("Built services in C++ and Node.js with CI/CD")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "ci/cd")
}

func TestTokenize_StripsPunctuation(t *testing.T) {
	tokens := Tokenize("Reduced latency, (by 40%)!")
	assert.Equal(t, []string{"reduced", "latency", "by", "40"}, tokens)
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"engineers", "engineer"},
		{"technologies", "technology"},
		{"databases", "database"},
		{"kubernetes", "kubernete"}, // lossy, but identical on both sides of a match
		{"analysis", "analysis"},
		{"aws", "aws"}, // too short to touch
		{"teams", "team"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Singularize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePhrase(t *testing.T) {
	assert.Equal(t, "distributed system", NormalizePhrase("Distributed Systems"))
	assert.Equal(t, "machine learning", NormalizePhrase("Machine  Learning"))
}

func TestAbbreviations_Symmetry(t *testing.T) {
	abbrev := Abbreviations()
	assert.Equal(t, "postgresql", abbrev["postgres"])
	assert.Equal(t, "kubernetes", abbrev["k8s"])
}
