// Package reconcile tracks proposed per-entry edits as token diffs and
// commits accepted changes into a new document version.
package reconcile

import "fmt"

// DuplicateProposalError indicates two proposals in one batch targeted the
// same entry. The whole batch fails; nothing is applied.
type DuplicateProposalError struct {
	EntryID string
}

func (e *DuplicateProposalError) Error() string {
	return fmt.Sprintf("duplicate proposal for entry %s", e.EntryID)
}

// UnknownEntryError indicates a proposal referenced an entry ID not present
// in the base document. The whole batch fails; nothing is applied.
type UnknownEntryError struct {
	EntryID string
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("proposal references unknown entry %s", e.EntryID)
}
