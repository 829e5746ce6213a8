package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/projectbridge/projectbridge/internal/jsonrepair"
	"github.com/projectbridge/projectbridge/internal/llm"
	"github.com/projectbridge/projectbridge/internal/normalize"
	"github.com/projectbridge/projectbridge/internal/prompts"
	"github.com/projectbridge/projectbridge/internal/types"
)

// GapAnalysis asks the model to compare candidate skills against job skills.
// The result carries the model's qualitative judgment only: match percentage
// and skill counts are recomputed by the matcher, which overrides whatever the
// model put in those fields.
func (e *Extractor) GapAnalysis(ctx context.Context, resumeSkills, jobSkills *types.ExtractedSkills) (*types.SkillGapAnalysisResult, error) {
	if resumeSkills == nil || jobSkills == nil {
		return nil, &ValidationError{Message: "both skill sets are required"}
	}

	template := prompts.MustGet("gap-analysis")
	prompt := prompts.Format(template, map[string]string{
		"ResumeSkills": formatSkills(resumeSkills),
		"JobSkills":    formatSkills(jobSkills),
	})

	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "gap analysis failed", Cause: err}
	}

	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	result, err := normalize.Into[types.SkillGapAnalysisResult](raw, gapShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing gap analysis", Cause: err}
	}
	return &result, nil
}

// QualificationComparison is the result of comparing candidate experience
// against job qualifications.
type QualificationComparison struct {
	Met   []string `json:"met"`
	Unmet []string `json:"unmet"`
}

// CompareQualifications asks the model which of the job's qualifications the
// candidate's experience covers.
func (e *Extractor) CompareQualifications(ctx context.Context, experience []types.Experience, qualifications []string) (*QualificationComparison, error) {
	if len(qualifications) == 0 {
		return &QualificationComparison{Met: []string{}, Unmet: []string{}}, nil
	}

	template := prompts.MustGet("qualification-comparison")
	prompt := prompts.Format(template, map[string]string{
		"Experience":     formatExperience(experience),
		"Qualifications": "- " + strings.Join(qualifications, "\n- "),
	})

	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "qualification comparison failed", Cause: err}
	}

	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	result, err := normalize.Into[QualificationComparison](raw, qualComparisonShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing qualification comparison", Cause: err}
	}
	return &result, nil
}

// formatSkills renders a skills object as compact JSON for prompt insertion.
func formatSkills(skills *types.ExtractedSkills) string {
	data, err := json.Marshal(skills)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// formatExperience renders work history as a bulleted list for prompt
// insertion.
func formatExperience(experience []types.Experience) string {
	if len(experience) == 0 {
		return "(none listed)"
	}
	var sb strings.Builder
	for _, exp := range experience {
		sb.WriteString("- ")
		sb.WriteString(exp.Title)
		if exp.Company != "" {
			sb.WriteString(" at ")
			sb.WriteString(exp.Company)
		}
		if exp.Duration != "" {
			sb.WriteString(" (")
			sb.WriteString(exp.Duration)
			sb.WriteString(")")
		}
		if len(exp.Technologies) > 0 {
			sb.WriteString(": ")
			sb.WriteString(strings.Join(exp.Technologies, ", "))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
