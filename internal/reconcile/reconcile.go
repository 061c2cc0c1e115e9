package reconcile

import (
	"github.com/jonathan/ats-engine/internal/document"
	"github.com/jonathan/ats-engine/internal/types"
)

// NewProposal builds a pending change proposal for an entry, with the
// token diff computed up front so callers can render it immediately.
func NewProposal(entryID, originalText, proposedText string) types.ChangeProposal {
	return types.ChangeProposal{
		EntryID:      entryID,
		OriginalText: originalText,
		ProposedText: proposedText,
		Diff:         Diff(originalText, proposedText),
		Decision:     types.DecisionPending,
	}
}

// Reconcile applies a batch of decided proposals to a base document.
//
// The batch is atomic: duplicate or unknown entry references fail the whole
// call and nothing is applied. Accepted proposals replace the entry text in
// a new version (same entry ID); rejected and pending proposals carry the
// original entry over unchanged. The new version holds exactly the same
// entry-ID set as the base — the reconciler never adds or removes entries.
// A batch with no accepted proposals is a no-op: the base document is
// returned as-is and no new version is minted.
//
// Rescoring and revalidating the new version is the caller's concern;
// Reconcile is a pure transform.
func Reconcile(base *types.Document, proposals []types.ChangeProposal) (*types.Document, []types.ChangeProposal, error) {
	ids := base.EntryIDs()
	accepted := make(map[string]string)
	seen := make(map[string]bool)

	for _, proposal := range proposals {
		if seen[proposal.EntryID] {
			return nil, nil, &DuplicateProposalError{EntryID: proposal.EntryID}
		}
		seen[proposal.EntryID] = true

		if !ids[proposal.EntryID] {
			return nil, nil, &UnknownEntryError{EntryID: proposal.EntryID}
		}

		if proposal.Decision == types.DecisionAccepted {
			accepted[proposal.EntryID] = proposal.ProposedText
		}
	}

	realized := make([]types.ChangeProposal, len(proposals))
	copy(realized, proposals)

	if len(accepted) == 0 {
		return base, realized, nil
	}

	next := document.NextVersion(base, base.Sections)
	for si := range next.Sections {
		for ei := range next.Sections[si].Entries {
			entry := &next.Sections[si].Entries[ei]
			if text, ok := accepted[entry.ID]; ok {
				entry.Text = text
			}
		}
	}

	return next, realized, nil
}
