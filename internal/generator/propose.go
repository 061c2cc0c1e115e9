package generator

import (
	"context"

	"github.com/jonathan/ats-engine/internal/reconcile"
	"github.com/jonathan/ats-engine/internal/types"
)

// ProposeBatch asks the generator for one rewrite per entry that needs
// attention: entries carrying at least one violation, plus entries in
// general when the document misses requirement phrases (missing phrases are
// offered to every targeted entry's prompt; the generator decides what fits
// honestly).
//
// Proposals come back pending. Generation is advisory: a failure on one
// entry aborts the batch so the caller never sees a silently partial set.
func ProposeBatch(ctx context.Context, client Client, doc *types.Document, report *types.ValidationReport, match *types.MatchResult) ([]types.ChangeProposal, error) {
	var missing []string
	if match != nil {
		missing = match.MissedPhrases()
	}

	var proposals []types.ChangeProposal
	for _, entry := range doc.Entries() {
		violations := report.ForEntry(entry.ID)
		if len(violations) == 0 {
			continue
		}

		messages := make([]string, 0, len(violations))
		for _, v := range violations {
			messages = append(messages, v.Message)
		}

		text, err := client.Propose(ctx, Request{
			EntryText:      entry.Text,
			Violations:     messages,
			MissingPhrases: missing,
		})
		if err != nil {
			return nil, &ProposeError{EntryID: entry.ID, Message: "generator call failed", Cause: err}
		}
		if text == "" || text == entry.Text {
			continue // nothing to propose for this entry
		}

		proposals = append(proposals, reconcile.NewProposal(entry.ID, entry.Text, text))
	}

	return proposals, nil
}
