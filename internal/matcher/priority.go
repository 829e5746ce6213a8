package matcher

import "github.com/projectbridge/projectbridge/internal/skillgraph"

// Priority levels for missing skills and recommendations
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Popularity bands used for priority and time-to-acquire decisions
const (
	highPopularity = 80
	lowPopularity  = 50
)

// MissingSkillPriority classifies how urgently a missing skill should be
// addressed. A skill that is a prerequisite of another currently-missing
// skill is always High; unblocking the rest of the gap dominates raw
// popularity. Otherwise popularity decides: >= 80 is High, < 50 is Low,
// anything else Medium. Skills unknown to the graph default to Medium.
func (m *Matcher) MissingSkillPriority(skill string, allMissing []string) string {
	node := m.graph.FindSkillByName(skill)
	if node == nil {
		return PriorityMedium
	}

	if m.isPrerequisiteOfOtherMissing(node, skill, allMissing) {
		return PriorityHigh
	}
	switch {
	case node.Popularity >= highPopularity:
		return PriorityHigh
	case node.Popularity < lowPopularity:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// isPrerequisiteOfOtherMissing reports whether any other missing skill
// requires node.
func (m *Matcher) isPrerequisiteOfOtherMissing(node *skillgraph.Node, skill string, allMissing []string) bool {
	selfKey := skillgraph.NormalizeName(skill)
	for _, other := range allMissing {
		if skillgraph.NormalizeName(other) == selfKey {
			continue
		}
		otherNode := m.graph.FindSkillByName(other)
		if otherNode == nil || otherNode.ID == node.ID {
			continue
		}
		if m.graph.IsRelatedTo(otherNode.ID, node.ID, skillgraph.Requires) {
			return true
		}
	}
	return false
}

// priorityRank orders High before Medium before Low for sorting.
func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
