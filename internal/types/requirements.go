// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Requirement categories recognized by the extractor's gazetteer
const (
	CategorySkill         = "skill"
	CategoryTool          = "tool"
	CategoryCertification = "certification"
	CategorySeniority     = "seniority"
)

// Requirement is a weighted keyword/phrase extracted from a job description.
// Phrase is stored as a normalized lowercase token sequence joined by spaces.
type Requirement struct {
	Phrase   string  `json:"phrase"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
}

// RequirementSet is an ordered sequence of requirements, deduplicated by
// phrase with weights summed. Immutable once built.
type RequirementSet struct {
	Requirements []Requirement `json:"requirements"`
}

// TotalWeight returns the sum of all requirement weights.
func (s *RequirementSet) TotalWeight() float64 {
	total := 0.0
	for _, req := range s.Requirements {
		total += req.Weight
	}
	return total
}
