// Package document provides construction and invariant enforcement for
// résumé documents, plus a plain-text parser that yields them.
package document

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// sectionPatterns recognizes common résumé section headers. Order matters:
// the first matching pattern names the section.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"summary", regexp.MustCompile(`(?i)^\s*(professional\s+)?(summary|profile|objective)\b`)},
	{"experience", regexp.MustCompile(`(?i)^\s*((work|professional)\s+)?(experience|employment|career)\b`)},
	{"education", regexp.MustCompile(`(?i)^\s*education\b`)},
	{"skills", regexp.MustCompile(`(?i)^\s*(technical\s+)?skills\b`)},
	{"certifications", regexp.MustCompile(`(?i)^\s*(certifications?|certificates)\b`)},
	{"projects", regexp.MustCompile(`(?i)^\s*projects\b`)},
}

// bulletPrefixes marks a line as a bullet entry.
var bulletPrefixes = []string{"•", "-", "*", "–", "‣"}

// FromText parses a plain-text résumé into a version-1 document.
// Section headers are matched against the common header patterns; bullet
// lines and non-empty body lines under a section become entries. Lines
// before the first recognized header land in a "header" section.
// Fails with EmptyInputError when no entries can be extracted.
func FromText(text string) (*types.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Message: "résumé text is empty"}
	}

	var sections []types.Section
	current := types.Section{Name: "header"}

	flush := func() {
		if len(current.Entries) > 0 {
			sections = append(sections, current)
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if name, ok := matchSectionHeader(line); ok {
			flush()
			current = types.Section{Name: name}
			continue
		}

		current.Entries = append(current.Entries, types.Entry{
			Text: stripBullet(line),
		})
	}
	flush()

	if len(sections) == 0 {
		return nil, &EmptyInputError{Message: "résumé text contains no entries"}
	}

	return New(sections)
}

// matchSectionHeader reports whether a line is a section header.
// Headers are short lines (no sentence-length prose) matching a known
// section pattern.
func matchSectionHeader(line string) (string, bool) {
	if len(line) > 48 {
		return "", false
	}
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(line) {
			return sp.name, true
		}
	}
	return "", false
}

// stripBullet removes a leading bullet marker from a line.
func stripBullet(line string) string {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}
