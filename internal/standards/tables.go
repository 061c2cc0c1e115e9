// Package standards holds the fixed rule-content tables (verb tiers,
// forbidden phrases, gazetteer) and loaders for externally supplied
// replacements. The algorithms that consume these tables live in the
// extraction and validation packages; the content can evolve without
// touching them.
package standards

// Verb tiers classify résumé-opening action verbs by perceived impact.
// Tier 1 is strongest.
const (
	Tier1 = 1
	Tier2 = 2
	Tier3 = 3
)

// VerbTiers maps a lowercase verb to its tier.
type VerbTiers map[string]int

// DefaultVerbTiers returns the built-in action-verb classification.
func DefaultVerbTiers() VerbTiers {
	tiers := make(VerbTiers)
	add := func(tier int, verbs ...string) {
		for _, v := range verbs {
			tiers[v] = tier
		}
	}
	add(Tier1,
		"architected", "orchestrated", "spearheaded", "pioneered", "transformed",
		"revolutionized", "optimized", "streamlined", "automated", "scaled")
	add(Tier2,
		"developed", "implemented", "created", "built", "designed", "managed",
		"led", "delivered", "executed", "coordinated", "launched", "engineered",
		"reduced", "increased", "improved", "shipped", "migrated")
	add(Tier3,
		"assisted", "helped", "participated", "supported", "contributed",
		"worked", "involved", "collaborated", "engaged", "handled")
	return tiers
}

// DefaultForbiddenPhrases returns the built-in forbidden-phrase list.
// Matches are case-insensitive substrings.
func DefaultForbiddenPhrases() []string {
	return []string{
		"responsible for",
		"worked on",
		"helped with",
		"duties included",
		"tasked with",
	}
}

// Gazetteer is the injectable table of known skills, tools, certifications
// and seniority keywords used by the requirement extractor. Multi-word
// phrases are allowed.
type Gazetteer struct {
	Skills         []string `json:"skills"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
	Seniority      []string `json:"seniority"`
}

// DefaultGazetteer returns the built-in gazetteer.
func DefaultGazetteer() *Gazetteer {
	return &Gazetteer{
		Skills: []string{
			"python", "java", "javascript", "typescript", "go", "rust", "sql",
			"nosql", "microservices", "api design", "rest", "graphql",
			"machine learning", "data engineering", "distributed systems",
			"leadership", "communication", "problem solving", "mentoring",
			"project management", "stakeholder management", "cross-functional",
		},
		Tools: []string{
			"docker", "kubernetes", "aws", "azure", "google cloud", "jenkins",
			"git", "linux", "mongodb", "postgresql", "redis", "elasticsearch",
			"kafka", "terraform", "ansible", "prometheus", "grafana", "ci/cd",
		},
		Certifications: []string{
			"aws certified", "pmp", "cka", "ckad", "security+",
			"solutions architect", "scrum master",
		},
		Seniority: []string{
			"senior", "staff", "principal", "lead", "manager", "director",
		},
	}
}

// Phrases returns every gazetteer phrase with its requirement category.
// Iteration order is stable: skills, tools, certifications, seniority.
func (g *Gazetteer) Phrases() []CategorizedPhrase {
	var phrases []CategorizedPhrase
	appendAll := func(category string, list []string) {
		for _, phrase := range list {
			phrases = append(phrases, CategorizedPhrase{Phrase: phrase, Category: category})
		}
	}
	appendAll("skill", g.Skills)
	appendAll("tool", g.Tools)
	appendAll("certification", g.Certifications)
	appendAll("seniority", g.Seniority)
	return phrases
}

// CategorizedPhrase pairs a gazetteer phrase with its category.
type CategorizedPhrase struct {
	Phrase   string
	Category string
}
