package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func TestDiff_ReplacementAndAppend(t *testing.T) {
	diff := Diff(
		"Managed a team of 5 engineers",
		"Managed a team of 8 engineers across 2 offices",
	)

	require.Equal(t, []types.DiffOp{
		{Op: types.DiffKeep, Span: "Managed a team of"},
		{Op: types.DiffDelete, Span: "5"},
		{Op: types.DiffInsert, Span: "8"},
		{Op: types.DiffKeep, Span: "engineers"},
		{Op: types.DiffInsert, Span: "across 2 offices"},
	}, diff)
}

func TestDiff_Identical(t *testing.T) {
	diff := Diff("Shipped the feature", "Shipped the feature")
	require.Equal(t, []types.DiffOp{
		{Op: types.DiffKeep, Span: "Shipped the feature"},
	}, diff)
}

func TestDiff_FullRewrite(t *testing.T) {
	diff := Diff("alpha beta", "gamma delta")
	require.Len(t, diff, 2)
	assert.Equal(t, types.DiffDelete, diff[0].Op)
	assert.Equal(t, types.DiffInsert, diff[1].Op)
}

func TestDiff_EmptySides(t *testing.T) {
	assert.Equal(t, []types.DiffOp{{Op: types.DiffInsert, Span: "new text"}}, Diff("", "new text"))
	assert.Equal(t, []types.DiffOp{{Op: types.DiffDelete, Span: "old text"}}, Diff("old text", ""))
	assert.Empty(t, Diff("", ""))
}

func TestDiff_AnchorsOnOpening(t *testing.T) {
	// "led" appears twice in the proposal; the alignment must keep the
	// opening occurrence so the first keep-run is as long as possible.
	diff := Diff("led the team", "led the team that led delivery")
	require.NotEmpty(t, diff)
	assert.Equal(t, types.DiffKeep, diff[0].Op)
	assert.Equal(t, "led the team", diff[0].Span)
}

func TestDiff_LongestOpeningKeepRunWins(t *testing.T) {
	// "improved" reappears later in the proposal. Keeping the first
	// occurrence eagerly yields an opening run of one token; the minimal
	// alignment that inserts first and keeps "improved latency" whole has
	// an opening run of two and must win.
	diff := Diff("improved latency", "improved reliability improved latency")
	require.Equal(t, []types.DiffOp{
		{Op: types.DiffInsert, Span: "improved reliability"},
		{Op: types.DiffKeep, Span: "improved latency"},
	}, diff)
}

func TestDiff_TrailingPunctuationKeepsWordAligned(t *testing.T) {
	// The comma must not break "team," away from "team": only the changed
	// word diffs.
	diff := Diff(
		"Managed a team, shipping weekly",
		"Managed a team, shipping daily",
	)
	require.Equal(t, []types.DiffOp{
		{Op: types.DiffKeep, Span: "Managed a team, shipping"},
		{Op: types.DiffDelete, Span: "weekly"},
		{Op: types.DiffInsert, Span: "daily"},
	}, diff)
}

func TestDiff_RoundTrip(t *testing.T) {
	original := "Reduced p99 latency by 45% across 12 services"
	proposed := "Reduced p99 latency by 45% across 12 services and cut costs"
	diff := Diff(original, proposed)

	// Reassembling keeps+inserts yields the proposed text.
	var rebuilt []string
	for _, op := range diff {
		if op.Op != types.DiffDelete {
			rebuilt = append(rebuilt, op.Span)
		}
	}
	assert.Equal(t, proposed, strings.Join(rebuilt, " "))
}
