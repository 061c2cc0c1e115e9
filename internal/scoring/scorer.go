// Package scoring computes the compatibility score between a document and
// an extracted requirement set.
package scoring

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/types"
)

// partialCredit is the weight fraction granted to near-miss matches
// (edit distance within tolerance, or abbreviation-table equivalence).
const partialCredit = 0.5

// Options holds the scorer's tunable matching parameters.
type Options struct {
	// MaxEditDistance is the per-token edit-distance tolerance for
	// partial-credit matches. 0 disables fuzzy matching.
	MaxEditDistance int
}

// DefaultOptions returns the standard matching parameters.
func DefaultOptions() *Options {
	return &Options{MaxEditDistance: 1}
}

// Scorer matches a requirement set against a document. Pure and
// deterministic: the same document and requirement set always produce the
// same MatchResult.
type Scorer struct {
	opts          *Options
	abbreviations map[string]string
}

// New builds a scorer. Nil options use DefaultOptions.
func New(opts *Options) *Scorer {
	if opts == nil {
		opts = DefaultOptions()
	}

	// The abbreviation table is written in raw form; keys and values must
	// go through the same normalization as document and requirement tokens
	// or lookups miss.
	abbreviations := make(map[string]string)
	for short, long := range parsing.Abbreviations() {
		abbreviations[parsing.Singularize(short)] = parsing.NormalizePhrase(long)
	}

	return &Scorer{
		opts:          opts,
		abbreviations: abbreviations,
	}
}

// entryTokens caches an entry's normalized tokens alongside its ID.
type entryTokens struct {
	id     string
	tokens []string
	joined string
}

// Score evaluates every requirement against every entry and returns the
// total score with per-requirement detail. An entry may satisfy many
// requirements; requirements are independent of each other.
func (s *Scorer) Score(doc *types.Document, set *types.RequirementSet) *types.MatchResult {
	entries := doc.Entries()
	tokenized := make([]entryTokens, len(entries))
	for i, entry := range entries {
		tokens := parsing.NormalizeTokens(entry.Text)
		tokenized[i] = entryTokens{
			id:     entry.ID,
			tokens: tokens,
			joined: " " + strings.Join(tokens, " ") + " ",
		}
	}

	result := &types.MatchResult{
		Outcomes: make([]types.RequirementOutcome, 0, len(set.Requirements)),
	}

	totalWeight := set.TotalWeight()
	totalContribution := 0.0

	for _, req := range set.Requirements {
		outcome := s.matchRequirement(req, tokenized)
		totalContribution += outcome.Contribution
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if totalWeight > 0 {
		result.Score = 100 * totalContribution / totalWeight
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	return result
}

// matchRequirement finds the best match for one requirement: an exact
// (stemmed) phrase hit contributes the full weight; a fuzzy or
// abbreviation hit contributes partialCredit * weight, flagged partial.
func (s *Scorer) matchRequirement(req types.Requirement, entries []entryTokens) types.RequirementOutcome {
	outcome := types.RequirementOutcome{
		Phrase:   req.Phrase,
		Category: req.Category,
	}

	needle := " " + req.Phrase + " "
	for i := range entries {
		if strings.Contains(entries[i].joined, needle) {
			outcome.Matched = true
			outcome.MatchedEntryID = &entries[i].id
			outcome.Contribution = req.Weight
			return outcome
		}
	}

	// Abbreviation pass: runs for phrases of any length, in both
	// directions. A document token whose expansion is the whole phrase
	// ("ml" covering "machine learning") hits, and so does the phrase's
	// own expansion appearing verbatim in an entry.
	expansion, hasExpansion := s.abbreviations[req.Phrase]
	for i := range entries {
		hit := false
		for _, token := range entries[i].tokens {
			if s.abbreviations[token] == req.Phrase {
				hit = true
				break
			}
		}
		if !hit && hasExpansion {
			hit = strings.Contains(entries[i].joined, " "+expansion+" ")
		}
		if hit {
			outcome.Matched = true
			outcome.Partial = true
			outcome.MatchedEntryID = &entries[i].id
			outcome.Contribution = partialCredit * req.Weight
			return outcome
		}
	}

	// Fuzzy pass: single-token phrases only; multi-word phrases either hit
	// exactly, hit through the abbreviation table, or miss.
	phraseTokens := strings.Fields(req.Phrase)
	if len(phraseTokens) != 1 {
		return outcome
	}

	for i := range entries {
		for _, token := range entries[i].tokens {
			if s.nearMatch(phraseTokens[0], token) {
				outcome.Matched = true
				outcome.Partial = true
				outcome.MatchedEntryID = &entries[i].id
				outcome.Contribution = partialCredit * req.Weight
				return outcome
			}
		}
	}

	return outcome
}

// nearMatch reports whether two tokens fall within the edit-distance
// tolerance.
func (s *Scorer) nearMatch(want, got string) bool {
	if s.opts.MaxEditDistance <= 0 {
		return false
	}
	// Very short tokens flip meaning with a single edit; require length 4+.
	if len(want) < 4 || len(got) < 4 {
		return false
	}
	return editDistance(want, got, s.opts.MaxEditDistance) <= s.opts.MaxEditDistance
}
