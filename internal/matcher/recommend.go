package matcher

import (
	"fmt"
	"sort"

	"github.com/projectbridge/projectbridge/internal/skillgraph"
	"github.com/projectbridge/projectbridge/internal/types"
)

// Recommendation types derived from a skill's graph category
const (
	RecommendationProject  = "Project"
	RecommendationCourse   = "Course"
	RecommendationPractice = "Hands-on Practice"
	RecommendationResource = "Learning Resource"
)

// Recommendations builds a ranked learning plan for the missing skills.
// Output is sorted by priority (High, Medium, Low) and otherwise keeps the
// missing-skill order stable.
func (m *Matcher) Recommendations(missing []string) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(missing))
	for _, skill := range missing {
		node := m.graph.FindSkillByName(skill)
		recType := recommendationType(node)
		recs = append(recs, types.Recommendation{
			Type:          recType,
			Description:   describeRecommendation(recType, displayName(node, skill)),
			TimeToAcquire: timeToAcquire(node),
			Priority:      m.MissingSkillPriority(skill, missing),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank(recs[i].Priority) < priorityRank(recs[j].Priority)
	})
	return recs
}

// recommendationType maps a skill's category to the most effective way to
// learn it: concepts are read about, tools are practiced, frameworks and
// libraries are learned by building.
func recommendationType(node *skillgraph.Node) string {
	if node == nil {
		return RecommendationCourse
	}
	switch node.Category {
	case skillgraph.CategoryConcept:
		return RecommendationResource
	case skillgraph.CategoryTool:
		return RecommendationPractice
	case skillgraph.CategoryFramework, skillgraph.CategoryLibrary:
		return RecommendationProject
	default:
		return RecommendationCourse
	}
}

// timeToAcquire bands learning time by popularity: widely-adopted skills have
// mature learning paths and abundant material, so they come faster.
func timeToAcquire(node *skillgraph.Node) string {
	if node == nil {
		return "1-3 months"
	}
	switch {
	case node.Popularity >= highPopularity:
		return "2-4 weeks"
	case node.Popularity < lowPopularity:
		return "3-6 months"
	default:
		return "1-3 months"
	}
}

func describeRecommendation(recType, skill string) string {
	switch recType {
	case RecommendationProject:
		return fmt.Sprintf("Build a portfolio project with %s", skill)
	case RecommendationPractice:
		return fmt.Sprintf("Get hands-on practice with %s in a sandbox environment", skill)
	case RecommendationResource:
		return fmt.Sprintf("Study %s through documentation and tutorials", skill)
	default:
		return fmt.Sprintf("Take a structured course on %s", skill)
	}
}

// displayName prefers the graph's canonical name over the raw requirement
// string.
func displayName(node *skillgraph.Node, fallback string) string {
	if node != nil {
		return node.Name
	}
	return fallback
}
