package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func TestNew_AssignsIDsAndSectionRefs(t *testing.T) {
	doc, err := New([]types.Section{
		{Name: "experience", Entries: []types.Entry{
			{Text: "Led a team of 5 engineers"},
			{Text: "Reduced deploy time by 40%"},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Version)
	assert.Nil(t, doc.ParentVersion)

	entries := doc.Entries()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEmpty(t, entries[1].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, "experience", entries[0].Section)
}

func TestNew_DuplicateIDFails(t *testing.T) {
	_, err := New([]types.Section{
		{Name: "experience", Entries: []types.Entry{
			{ID: "e1", Text: "first"},
			{ID: "e1", Text: "second"},
		}},
	})
	require.Error(t, err)

	var malformed *MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "e1", malformed.EntryID)
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	sections := []types.Section{
		{Name: "skills", Entries: []types.Entry{{Text: "Go"}}},
	}
	_, err := New(sections)
	require.NoError(t, err)
	assert.Empty(t, sections[0].Entries[0].ID, "input sections should not be mutated")
}

func TestValidate(t *testing.T) {
	doc := &types.Document{
		Version: 1,
		Sections: []types.Section{
			{Name: "experience", Entries: []types.Entry{
				{ID: "e1", Text: "a", Section: "experience"},
				{ID: "e2", Text: "b", Section: "experience"},
			}},
		},
	}
	assert.NoError(t, Validate(doc))

	doc.Sections[0].Entries[1].ID = "e1"
	assert.Error(t, Validate(doc))
}

func TestNextVersion_Lineage(t *testing.T) {
	base, err := New([]types.Section{
		{Name: "experience", Entries: []types.Entry{{ID: "e1", Text: "a"}}},
	})
	require.NoError(t, err)

	next := NextVersion(base, base.Sections)
	assert.Equal(t, 2, next.Version)
	require.NotNil(t, next.ParentVersion)
	assert.Equal(t, 1, *next.ParentVersion)
	assert.Equal(t, "e1", next.Entries()[0].ID)
}

func TestFromText_SectionsAndBullets(t *testing.T) {
	text := `Jane Doe
jane@example.com

Professional Summary
Senior engineer with 8 years of experience.

Work Experience
• Led migration of 30 services to Kubernetes
- Reduced infrastructure costs by $120K annually

Skills
Go, PostgreSQL, Terraform`

	doc, err := FromText(text)
	require.NoError(t, err)

	names := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"header", "summary", "experience", "skills"}, names)

	exp := doc.Sections[2]
	require.Len(t, exp.Entries, 2)
	assert.Equal(t, "Led migration of 30 services to Kubernetes", exp.Entries[0].Text)
	assert.Equal(t, "Reduced infrastructure costs by $120K annually", exp.Entries[1].Text)
}

func TestFromText_Empty(t *testing.T) {
	_, err := FromText("   \n\n  ")
	require.Error(t, err)

	var empty *EmptyInputError
	assert.ErrorAs(t, err, &empty)
}
