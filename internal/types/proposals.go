// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Decision states for a change proposal
const (
	DecisionPending  = "pending"
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// Diff operation kinds
const (
	DiffKeep   = "keep"
	DiffInsert = "insert"
	DiffDelete = "delete"
)

// DiffOp is one operation in a token-aligned edit script. Span holds the
// affected tokens joined by single spaces.
type DiffOp struct {
	Op   string `json:"op"`
	Span string `json:"span"`
}

// ChangeProposal is a proposed replacement text for a single entry,
// supplied by an external generator, tracked through user review.
type ChangeProposal struct {
	EntryID      string   `json:"entry_id"`
	OriginalText string   `json:"original_text"`
	ProposedText string   `json:"proposed_text"`
	Diff         []DiffOp `json:"diff,omitempty"`
	Decision     string   `json:"decision"`
}
