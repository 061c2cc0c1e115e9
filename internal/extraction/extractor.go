// Package extraction parses job-description text into a normalized,
// weighted requirement set.
package extraction

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/standards"
	"github.com/jonathan/ats-engine/internal/types"
)

// Base weights per requirement category. Certifications outrank plain
// skills because ATS filters treat them as hard gates.
var baseWeights = map[string]float64{
	types.CategorySkill:         1.0,
	types.CategoryTool:          0.9,
	types.CategoryCertification: 1.2,
	types.CategorySeniority:     0.6,
}

// requirementsHeader marks the start of a requirements/qualifications zone
// in the job description; phrases found inside it get the positional bonus.
var requirementsHeader = regexp.MustCompile(`(?i)^\s*(requirements|qualifications|must[- ]haves?|what (you'?ll|we) (need|require))\b`)

// otherHeader ends a requirements zone.
var otherHeader = regexp.MustCompile(`(?i)^\s*(responsibilities|about|benefits|perks|nice[- ]to[- ]haves?|what (you'?ll|we) (do|offer)|compensation)\b`)

// Options holds the extractor's tunable scoring parameters.
type Options struct {
	// PositionalBonus multiplies the base weight of phrases found inside a
	// requirements/qualifications section.
	PositionalBonus float64
	// FrequencyFactor scales the logarithmic repeat bonus.
	FrequencyFactor float64
	// FrequencyCap bounds the repeat bonus.
	FrequencyCap float64
}

// DefaultOptions returns the standard scoring parameters.
func DefaultOptions() *Options {
	return &Options{
		PositionalBonus: 1.5,
		FrequencyFactor: 0.25,
		FrequencyCap:    1.0,
	}
}

// Extractor turns job-description text into a RequirementSet using an
// injectable gazetteer.
type Extractor struct {
	opts    *Options
	phrases []gazetteerPhrase
}

// gazetteerPhrase is a pre-normalized gazetteer entry.
type gazetteerPhrase struct {
	normalized string
	tokens     []string
	category   string
}

// New builds an extractor over the given gazetteer. A nil gazetteer uses
// the built-in default; nil options use DefaultOptions.
func New(gazetteer *standards.Gazetteer, opts *Options) *Extractor {
	if gazetteer == nil {
		gazetteer = standards.DefaultGazetteer()
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	var phrases []gazetteerPhrase
	for _, cp := range gazetteer.Phrases() {
		tokens := parsing.NormalizeTokens(cp.Phrase)
		if len(tokens) == 0 {
			continue
		}
		phrases = append(phrases, gazetteerPhrase{
			normalized: strings.Join(tokens, " "),
			tokens:     tokens,
			category:   cp.Category,
		})
	}

	return &Extractor{opts: opts, phrases: phrases}
}

// phraseStats accumulates occurrences of one phrase across the JD.
type phraseStats struct {
	category string
	count    int
	inZone   bool
	order    int
}

// Extract parses job-description text into a RequirementSet. Requirements
// are deduplicated by normalized phrase with weights summed across
// categories. Fails with EmptyInputError when the text is empty, contains
// no tokens after normalization, or matches no gazetteer phrase.
func (e *Extractor) Extract(text string) (*types.RequirementSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Message: "job description text is empty"}
	}

	stats := make(map[string]*phraseStats)
	sawTokens := false
	inRequirementsZone := false
	order := 0

	for _, line := range strings.Split(text, "\n") {
		// Header lines flip the zone but still get tokenized: postings
		// often pack phrases onto the header itself
		// ("Requirements: Python, Kubernetes").
		switch {
		case requirementsHeader.MatchString(line):
			inRequirementsZone = true
		case otherHeader.MatchString(line):
			inRequirementsZone = false
		}

		tokens := parsing.NormalizeTokens(line)
		if len(tokens) == 0 {
			continue
		}
		sawTokens = true

		for _, phrase := range e.phrases {
			count := countOccurrences(tokens, phrase.tokens)
			if count == 0 {
				continue
			}
			st, ok := stats[phrase.normalized]
			if !ok {
				st = &phraseStats{category: phrase.category, order: order}
				stats[phrase.normalized] = st
				order++
			}
			st.count += count
			st.inZone = st.inZone || inRequirementsZone
		}
	}

	if !sawTokens {
		return nil, &EmptyInputError{Message: "job description contains no recognizable tokens"}
	}
	if len(stats) == 0 {
		return nil, &EmptyInputError{Message: "job description matches no known requirement phrases"}
	}

	requirements := make([]types.Requirement, len(stats))
	for normalized, st := range stats {
		requirements[st.order] = types.Requirement{
			Phrase:   normalized,
			Category: st.category,
			Weight:   e.weight(st),
		}
	}

	return &types.RequirementSet{Requirements: requirements}, nil
}

// weight computes a phrase's final weight: category base weight, times the
// positional bonus when the phrase appeared inside a requirements section,
// plus a capped logarithmic frequency bonus for repeats.
func (e *Extractor) weight(st *phraseStats) float64 {
	weight := baseWeights[st.category]
	if st.inZone {
		weight *= e.opts.PositionalBonus
	}

	freqBonus := e.opts.FrequencyFactor * math.Log2(float64(st.count))
	if freqBonus > e.opts.FrequencyCap {
		freqBonus = e.opts.FrequencyCap
	}
	return weight + freqBonus
}

// countOccurrences counts non-overlapping occurrences of the phrase token
// sequence within the line tokens.
func countOccurrences(tokens, phrase []string) int {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return 0
	}
	count := 0
	for i := 0; i+len(phrase) <= len(tokens); {
		if matchAt(tokens, phrase, i) {
			count++
			i += len(phrase)
			continue
		}
		i++
	}
	return count
}

func matchAt(tokens, phrase []string, at int) bool {
	for j, p := range phrase {
		if tokens[at+j] != p {
			return false
		}
	}
	return true
}
