package matcher

import (
	"fmt"
	"strings"

	"github.com/projectbridge/projectbridge/internal/skillgraph"
	"github.com/projectbridge/projectbridge/internal/types"
)

// AnalyzeGap runs the full comparison between candidate skills and job
// requirements and assembles a SkillGapAnalysisResult. Match percentage,
// matched and missing lists, and recommendations are all computed from the
// graph, never trusted from an LLM.
func (m *Matcher) AnalyzeGap(have, need []string) *types.SkillGapAnalysisResult {
	result := types.NewSkillGapAnalysisResult()

	matched := m.FindAllMatches(have, need)
	missing := m.FindMissingSkills(have, need)
	result.MatchPercentage = m.CalculateMatchPercentage(have, need)

	for _, name := range matched {
		result.MatchedSkills = append(result.MatchedSkills, types.MatchedSkill{
			Name:      displayName(m.graph.FindSkillByName(name), name),
			Relevance: m.matchRelevance(have, name),
		})
	}

	for _, name := range missing {
		node := m.graph.FindSkillByName(name)
		result.MissingSkills = append(result.MissingSkills, types.MissingSkill{
			Name:     displayName(node, name),
			Priority: m.MissingSkillPriority(name, missing),
			Context:  missingContext(node),
		})
	}

	result.Recommendations = m.Recommendations(missing)
	result.Summary = summarize(result)
	return result
}

// matchRelevance distinguishes how a requirement was covered: "direct" when
// the candidate lists the skill itself, "related" when coverage came through
// the graph.
func (m *Matcher) matchRelevance(have []string, needName string) string {
	needNode := m.graph.FindSkillByName(needName)
	needKey := skillgraph.NormalizeName(needName)
	for _, haveName := range have {
		if skillgraph.NormalizeName(haveName) == needKey {
			return "direct"
		}
		if needNode != nil {
			if haveNode := m.graph.FindSkillByName(haveName); haveNode != nil && haveNode.ID == needNode.ID {
				return "direct"
			}
		}
	}
	return "related"
}

// missingContext annotates a missing skill with its graph category, which
// downstream consumers surface as "why this matters" text.
func missingContext(node *skillgraph.Node) string {
	if node == nil {
		return ""
	}
	return string(node.Category)
}

// summarize produces the one-paragraph prose summary of the gap analysis.
func summarize(result *types.SkillGapAnalysisResult) string {
	if len(result.MissingSkills) == 0 {
		return fmt.Sprintf("Strong match (%d%%): the candidate covers every required skill.",
			result.MatchPercentage)
	}

	names := make([]string, 0, len(result.MissingSkills))
	for _, ms := range result.MissingSkills {
		names = append(names, ms.Name)
	}
	return fmt.Sprintf("The candidate matches %d%% of the required skills. Key gaps: %s.",
		result.MatchPercentage, strings.Join(names, ", "))
}
