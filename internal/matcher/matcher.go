// Package matcher computes the skill gap between a candidate's skills and a
// job's requirements using the skill knowledge graph. It is pure computation:
// no I/O, no LLM calls, no logging. Callers own those concerns.
package matcher

import (
	"github.com/projectbridge/projectbridge/internal/skillgraph"
)

// SemanticSimilarityThreshold is the raw-name Levenshtein similarity required
// for two differently-resolved names to count as a semantic match.
const SemanticSimilarityThreshold = 0.8

// Matcher answers match queries against a built graph. The graph must be
// fully constructed before the first query; the matcher never mutates it.
type Matcher struct {
	graph *skillgraph.Graph
}

// New creates a Matcher over g.
func New(g *skillgraph.Graph) *Matcher {
	return &Matcher{graph: g}
}

// Graph exposes the underlying knowledge graph for callers that need direct
// lookups alongside matching.
func (m *Matcher) Graph() *skillgraph.Graph {
	return m.graph
}

// FindAllMatches returns the required skills covered by the candidate: the
// deduplicated union of exact, semantic, and implied matches, in requirement
// order. Entries are compared through graph resolution first and normalized
// names second, so "JS" and "JavaScript" meet as the same node.
func (m *Matcher) FindAllMatches(have, need []string) []string {
	var matches []string
	seen := make(map[string]bool)

	for _, needName := range need {
		key := skillgraph.NormalizeName(needName)
		if key == "" || seen[key] {
			continue
		}
		for _, haveName := range have {
			if m.isMatch(haveName, needName) {
				seen[key] = true
				matches = append(matches, needName)
				break
			}
		}
	}
	return matches
}

// isMatch reports whether a single candidate skill covers a single required
// skill through any of the three match tiers.
func (m *Matcher) isMatch(haveName, needName string) bool {
	haveNode := m.graph.FindSkillByName(haveName)
	needNode := m.graph.FindSkillByName(needName)

	// Exact: both resolve to the same node, or the raw names normalize
	// identically when neither is in the graph.
	if haveNode != nil && needNode != nil && haveNode.ID == needNode.ID {
		return true
	}
	if skillgraph.NormalizeName(haveName) == skillgraph.NormalizeName(needName) {
		return true
	}

	// Semantic: linked by a similarity/alternative edge, or the raw names are
	// close enough by edit distance.
	if haveNode != nil && needNode != nil {
		if m.graph.IsRelatedTo(haveNode.ID, needNode.ID, skillgraph.SimilarTo, skillgraph.AlternativeTo) {
			return true
		}
	}
	similarity := skillgraph.Similarity(
		skillgraph.NormalizeName(haveName),
		skillgraph.NormalizeName(needName),
	)
	if similarity >= SemanticSimilarityThreshold {
		return true
	}

	// Implied: the candidate holds a parent of the requirement, or the
	// requirement's prerequisite. Possessing the prerequisite counts as
	// partial coverage of the dependent skill.
	if haveNode != nil && needNode != nil {
		if m.graph.IsRelatedTo(haveNode.ID, needNode.ID, skillgraph.ParentOf) {
			return true
		}
		if m.graph.IsRelatedTo(needNode.ID, haveNode.ID, skillgraph.Requires) {
			return true
		}
	}
	return false
}

// CalculateMatchPercentage returns round(matched/required * 100). An empty
// requirement list is vacuously satisfied and reports 100; this convention is
// fixed here so every caller agrees. Requirements are deduplicated by
// normalized name before counting.
func (m *Matcher) CalculateMatchPercentage(have, need []string) int {
	required := dedupeNormalized(need)
	if len(required) == 0 {
		return 100
	}
	matched := len(m.FindAllMatches(have, required))
	return int(float64(matched)/float64(len(required))*100 + 0.5)
}

// FindMissingSkills returns the required skills not covered by any match
// tier, deduplicated, in requirement order.
func (m *Matcher) FindMissingSkills(have, need []string) []string {
	matched := make(map[string]bool)
	for _, name := range m.FindAllMatches(have, need) {
		matched[skillgraph.NormalizeName(name)] = true
	}

	var missing []string
	seen := make(map[string]bool)
	for _, name := range need {
		key := skillgraph.NormalizeName(name)
		if key == "" || seen[key] || matched[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, name)
	}
	return missing
}

// dedupeNormalized removes duplicate names by normalized form, keeping first
// occurrences.
func dedupeNormalized(names []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range names {
		key := skillgraph.NormalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
