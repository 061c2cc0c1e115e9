package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func baseDoc() *types.Document {
	return &types.Document{
		Version: 3,
		Sections: []types.Section{
			{Name: "experience", Entries: []types.Entry{
				{ID: "e1", Text: "Managed a team of 5 engineers", Section: "experience"},
				{ID: "e2", Text: "Worked on the billing system", Section: "experience"},
			}},
			{Name: "skills", Entries: []types.Entry{
				{ID: "e3", Text: "Go, PostgreSQL, Kubernetes", Section: "skills"},
			}},
		},
	}
}

func TestReconcile_AcceptedProposal(t *testing.T) {
	base := baseDoc()
	proposal := NewProposal("e1", base.EntryByID("e1").Text, "Managed a team of 8 engineers across 2 offices")
	proposal.Decision = types.DecisionAccepted

	next, realized, err := Reconcile(base, []types.ChangeProposal{proposal})
	require.NoError(t, err)

	assert.Equal(t, 4, next.Version)
	require.NotNil(t, next.ParentVersion)
	assert.Equal(t, 3, *next.ParentVersion)

	assert.Equal(t, "Managed a team of 8 engineers across 2 offices", next.EntryByID("e1").Text)
	assert.Equal(t, "e1", next.EntryByID("e1").ID)

	// Every other entry is byte-identical to the base version.
	assert.Equal(t, base.EntryByID("e2"), next.EntryByID("e2"))
	assert.Equal(t, base.EntryByID("e3"), next.EntryByID("e3"))

	// Entry-ID set is preserved exactly.
	assert.Equal(t, base.EntryIDs(), next.EntryIDs())

	require.Len(t, realized, 1)
	assert.Equal(t, types.DecisionAccepted, realized[0].Decision)
}

func TestReconcile_AllRejectedIsNoOp(t *testing.T) {
	base := baseDoc()
	p1 := NewProposal("e1", base.EntryByID("e1").Text, "different text")
	p1.Decision = types.DecisionRejected
	p2 := NewProposal("e2", base.EntryByID("e2").Text, "other text")
	p2.Decision = types.DecisionRejected

	next, _, err := Reconcile(base, []types.ChangeProposal{p1, p2})
	require.NoError(t, err)

	assert.Same(t, base, next, "no-op commit must not mint a new version")
	assert.Equal(t, 3, next.Version)
}

func TestReconcile_PendingCarriedOverUnchanged(t *testing.T) {
	base := baseDoc()
	accepted := NewProposal("e1", base.EntryByID("e1").Text, "new e1 text")
	accepted.Decision = types.DecisionAccepted
	pending := NewProposal("e2", base.EntryByID("e2").Text, "new e2 text")

	next, _, err := Reconcile(base, []types.ChangeProposal{accepted, pending})
	require.NoError(t, err)

	assert.Equal(t, "new e1 text", next.EntryByID("e1").Text)
	assert.Equal(t, base.EntryByID("e2").Text, next.EntryByID("e2").Text)
}

func TestReconcile_DuplicateProposalFailsWholeBatch(t *testing.T) {
	base := baseDoc()
	p1 := NewProposal("e3", base.EntryByID("e3").Text, "first")
	p1.Decision = types.DecisionAccepted
	p2 := NewProposal("e3", base.EntryByID("e3").Text, "second")
	p2.Decision = types.DecisionAccepted

	next, realized, err := Reconcile(base, []types.ChangeProposal{p1, p2})
	require.Error(t, err)

	var dup *DuplicateProposalError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "e3", dup.EntryID)

	assert.Nil(t, next)
	assert.Nil(t, realized)
	assert.Equal(t, "Go, PostgreSQL, Kubernetes", base.EntryByID("e3").Text, "base must be untouched")
}

func TestReconcile_UnknownEntryFailsWholeBatch(t *testing.T) {
	base := baseDoc()
	known := NewProposal("e1", base.EntryByID("e1").Text, "new text")
	known.Decision = types.DecisionAccepted
	unknown := NewProposal("e9", "ghost", "ghost edit")
	unknown.Decision = types.DecisionAccepted

	next, _, err := Reconcile(base, []types.ChangeProposal{known, unknown})
	require.Error(t, err)

	var unknownErr *UnknownEntryError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "e9", unknownErr.EntryID)

	assert.Nil(t, next)
	assert.Equal(t, "Managed a team of 5 engineers", base.EntryByID("e1").Text, "no partial application")
}

func TestNewProposal_PendingWithDiff(t *testing.T) {
	proposal := NewProposal("e1", "Managed a team of 5 engineers", "Managed a team of 8 engineers")

	assert.Equal(t, types.DecisionPending, proposal.Decision)
	require.NotEmpty(t, proposal.Diff)
	assert.Equal(t, types.DiffKeep, proposal.Diff[0].Op)
	assert.Equal(t, "Managed a team of", proposal.Diff[0].Span)
}
