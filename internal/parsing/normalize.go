// Package parsing provides text normalization shared by the requirement
// extractor and the match scorer. Both sides must normalize identically or
// matching silently degrades.
package parsing

import (
	"strings"
	"unicode"
)

// abbreviations maps common short forms to their canonical normalized form.
// Lookup is symmetric: the scorer treats a token and its expansion as
// equivalent in either direction.
var abbreviations = map[string]string{
	"postgres":   "postgresql",
	"k8s":        "kubernetes",
	"js":         "javascript",
	"ts":         "typescript",
	"golang":     "go",
	"tf":         "terraform",
	"es":         "elasticsearch",
	"ml":         "machine learning",
	"ci/cd":      "cicd",
	"node.js":    "nodejs",
	"react.js":   "react",
	"mgmt":       "management",
	"infra":      "infrastructure",
	"db":         "database",
	"msa":        "microservices",
	"gcp":        "google cloud",
	"eks":        "kubernetes",
	"cert":       "certification",
	"postgresdb": "postgresql",
}

// Abbreviations returns the canonical abbreviation table.
func Abbreviations() map[string]string {
	return abbreviations
}

// Tokenize splits text into lowercase word tokens. Tokens are bounded by
// whitespace and punctuation, but characters that commonly appear inside
// skill names (+, #, /, .) are kept so "c++", "ci/cd" and "node.js" survive.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '/', '.':
			return false
		}
		return true
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, "./")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Singularize strips a simple English plural suffix from a token.
// Deliberately conservative: short tokens and tokens that look like
// acronyms or already-singular words are left alone.
func Singularize(token string) string {
	if len(token) < 4 {
		return token
	}
	switch {
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ses"), strings.HasSuffix(token, "xes"), strings.HasSuffix(token, "zes"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ss"), strings.HasSuffix(token, "us"), strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}
	return token
}

// NormalizeTokens tokenizes text and singularizes each token.
func NormalizeTokens(text string) []string {
	tokens := Tokenize(text)
	for i, token := range tokens {
		tokens[i] = Singularize(token)
	}
	return tokens
}

// NormalizePhrase returns the canonical form of a phrase: lowercase,
// singularized tokens joined by single spaces.
func NormalizePhrase(phrase string) string {
	return strings.Join(NormalizeTokens(phrase), " ")
}
