package report

import (
	"fmt"

	"github.com/jonathan/ats-engine/internal/types"
)

const maxRecommendations = 10

// recommend derives actionable suggestions from a summary and the raw
// validation report, capped at ten.
func recommend(s *Summary, report *types.ValidationReport) []string {
	var recs []string

	if s.Errors > 0 {
		recs = append(recs, "Remove forbidden filler phrases before anything else; they read as padding to both scanners and humans")
	}

	if s.MissedCount > 0 {
		gaps := s.TopGaps(3)
		switch len(gaps) {
		case 1:
			recs = append(recs, fmt.Sprintf("Work %q into a relevant entry if you have real experience with it", gaps[0]))
		default:
			recs = append(recs, fmt.Sprintf("Cover the biggest keyword gaps first: %s", joinQuoted(gaps)))
		}
	}

	if s.QuantificationRate < 0.6 && s.EntryCount >= 3 {
		recs = append(recs, "Quantify more of your achievements with specific metrics and numbers")
	}

	if report != nil {
		weakVerbs := 0
		overlong := 0
		for _, violations := range report.Violations {
			for _, v := range violations {
				switch v.RuleID {
				case "action_verb_tier":
					weakVerbs++
				case "entry_length":
					overlong++
				}
			}
		}
		if weakVerbs > 0 {
			recs = append(recs, "Open more bullets with strong action verbs instead of passive or generic phrasing")
		}
		if overlong > 0 {
			recs = append(recs, "Tighten overlong bullets; one concrete outcome per line scans better")
		}
	}

	if s.PartialCount > 0 {
		recs = append(recs, "Spell out abbreviated or near-miss technologies the way the posting names them")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func joinQuoted(phrases []string) string {
	out := ""
	for i, p := range phrases {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", p)
	}
	return out
}
