// Package document provides construction and invariant enforcement for
// résumé documents, plus a plain-text parser that yields them.
package document

import "fmt"

// MalformedDocumentError indicates a document violated the
// uniqueness-of-ID invariant on construction.
type MalformedDocumentError struct {
	EntryID string
	Message string
}

func (e *MalformedDocumentError) Error() string {
	if e.EntryID != "" {
		return fmt.Sprintf("malformed document: %s (entry %s)", e.Message, e.EntryID)
	}
	return fmt.Sprintf("malformed document: %s", e.Message)
}

// EmptyInputError indicates the résumé text contained no usable content.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Message)
}
