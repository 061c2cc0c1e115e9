// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/report"
	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs the compatibility score with a per-requirement
// breakdown, missed phrases last.
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f / 100\n\n", match.Score))

	count := min(len(match.Outcomes), maxItemsToShow)
	for i := 0; i < count; i++ {
		outcome := match.Outcomes[i]
		marker := "✗"
		if outcome.Matched {
			marker = "✓"
			if outcome.Partial {
				marker = "~"
			}
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)", marker, outcome.Phrase, outcome.Category))
		if outcome.Matched {
			sb.WriteString(fmt.Sprintf("  +%.2f", outcome.Contribution))
		}
		sb.WriteString("\n")
	}
	if len(match.Outcomes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more requirements\n", len(match.Outcomes)-maxItemsToShow))
	}

	if missed := match.MissedPhrases(); len(missed) > 0 {
		joined := strings.Join(missed, ", ")
		if len(joined) > 45 {
			joined = joined[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMissing: %s", joined))
	}

	p.printBox("REQUIREMENT MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs standards violations grouped by entry.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(vr *types.ValidationReport) {
	if vr == nil || vr.Total() == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (%d errors, %d warnings):\n\n",
		vr.Total(),
		vr.CountBySeverity(types.SeverityError),
		vr.CountBySeverity(types.SeverityWarning),
	))

	shown := 0
	for _, entryID := range vr.EntryIDs() {
		for _, v := range vr.ForEntry(entryID) {
			if shown >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more", vr.Total()-shown))
				p.printBox("STANDARDS VIOLATIONS", sb.String())
				return
			}
			where := entryID
			if where == types.DocumentLevelID {
				where = "document"
			}
			message := v.Message
			if len(message) > 45 {
				message = message[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ [%s] %s (%s)\n", v.Severity, where, v.RuleID))
			sb.WriteString(fmt.Sprintf("  %s\n", message))
			shown++
		}
	}

	p.printBox("STANDARDS VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProposal outputs one pending change with its token diff rendered
// inline: deletions in [-brackets-], insertions in {+braces+}.
func (p *Printer) PrintProposal(proposal *types.ChangeProposal) {
	if proposal == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Entry: %s\n\n", proposal.EntryID))

	var diff []string
	for _, op := range proposal.Diff {
		switch op.Op {
		case types.DiffDelete:
			diff = append(diff, "[-"+op.Span+"-]")
		case types.DiffInsert:
			diff = append(diff, "{+"+op.Span+"+}")
		default:
			diff = append(diff, op.Span)
		}
	}
	sb.WriteString(strings.Join(diff, " "))

	p.printBox(fmt.Sprintf("PROPOSED CHANGE (%s)", proposal.Decision), sb.String())
}

// PrintSummary outputs the scan digest and its recommendations.
func (p *Printer) PrintSummary(summary *report.Summary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:          %.1f / 100\n", summary.Score))
	sb.WriteString(fmt.Sprintf("Version:        %d\n", summary.Version))
	sb.WriteString(fmt.Sprintf("Requirements:   %d matched, %d partial, %d missed\n",
		summary.MatchedCount, summary.PartialCount, summary.MissedCount))
	sb.WriteString(fmt.Sprintf("Violations:     %d errors, %d warnings, %d infos\n",
		summary.Errors, summary.Warnings, summary.Infos))
	sb.WriteString(fmt.Sprintf("Quantified:     %.0f%% of entries\n", summary.QuantificationRate*100))

	if len(summary.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(summary.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := summary.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(summary.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Recommendations)-3))
		}
	}

	p.printBox("SCAN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
