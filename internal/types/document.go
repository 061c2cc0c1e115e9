// Package types provides type definitions for structured data used throughout the ats-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Entry is a single bullet/line of résumé content, the atomic unit of
// scoring, validation and editing. Entries are immutable once created;
// an edit produces a new Entry with the same ID inside a new Document version.
type Entry struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Section string `json:"section"`
}

// Section is a named, ordered group of entries (e.g. "experience", "skills")
type Section struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Document is the canonical in-memory representation of a résumé.
// Versions form a lineage: ParentVersion is a weak back-reference to the
// version this document was derived from, nil for an original document.
type Document struct {
	Version       int       `json:"version"`
	ParentVersion *int      `json:"parent_version,omitempty"`
	Sections      []Section `json:"sections"`
}

// Entries returns all entries in document order, flattened across sections.
func (d *Document) Entries() []Entry {
	var entries []Entry
	for _, section := range d.Sections {
		entries = append(entries, section.Entries...)
	}
	return entries
}

// EntryByID returns the entry with the given ID, or nil if not present.
func (d *Document) EntryByID(id string) *Entry {
	for si := range d.Sections {
		for ei := range d.Sections[si].Entries {
			if d.Sections[si].Entries[ei].ID == id {
				return &d.Sections[si].Entries[ei]
			}
		}
	}
	return nil
}

// EntryIDs returns the set of entry IDs present in the document.
func (d *Document) EntryIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, entry := range d.Entries() {
		ids[entry.ID] = true
	}
	return ids
}
