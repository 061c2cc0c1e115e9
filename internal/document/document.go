// Package document provides construction and invariant enforcement for
// résumé documents, plus a plain-text parser that yields them.
package document

import (
	"github.com/google/uuid"

	"github.com/jonathan/ats-engine/internal/types"
)

// New builds a version-1 document from sections, enforcing the
// uniqueness-of-entry-ID invariant. Entries with empty IDs are assigned
// fresh UUIDs; duplicate IDs fail with MalformedDocumentError.
func New(sections []types.Section) (*types.Document, error) {
	doc := &types.Document{
		Version:  1,
		Sections: cloneSections(sections),
	}

	seen := make(map[string]bool)
	for si := range doc.Sections {
		for ei := range doc.Sections[si].Entries {
			entry := &doc.Sections[si].Entries[ei]
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			if seen[entry.ID] {
				return nil, &MalformedDocumentError{
					EntryID: entry.ID,
					Message: "duplicate entry ID",
				}
			}
			seen[entry.ID] = true
			entry.Section = doc.Sections[si].Name
		}
	}

	return doc, nil
}

// Validate checks the uniqueness-of-ID invariant on an existing document,
// e.g. one deserialized from an external parser or store.
func Validate(doc *types.Document) error {
	seen := make(map[string]bool)
	for _, entry := range doc.Entries() {
		if entry.ID == "" {
			return &MalformedDocumentError{Message: "entry with empty ID"}
		}
		if seen[entry.ID] {
			return &MalformedDocumentError{EntryID: entry.ID, Message: "duplicate entry ID"}
		}
		seen[entry.ID] = true
	}
	return nil
}

// NextVersion derives a new document from base with the given sections.
// The new version number is base.Version+1 and ParentVersion points back
// at the base, forming the lineage.
func NextVersion(base *types.Document, sections []types.Section) *types.Document {
	parent := base.Version
	return &types.Document{
		Version:       base.Version + 1,
		ParentVersion: &parent,
		Sections:      cloneSections(sections),
	}
}

// cloneSections deep-copies sections so callers can't mutate a document
// through the slice they passed in.
func cloneSections(sections []types.Section) []types.Section {
	cloned := make([]types.Section, len(sections))
	for i, section := range sections {
		cloned[i] = types.Section{
			Name:    section.Name,
			Entries: make([]types.Entry, len(section.Entries)),
		}
		copy(cloned[i].Entries, section.Entries)
	}
	return cloned
}
