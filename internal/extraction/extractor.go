// Package extraction turns raw resume and job description text into structured
// analysis results using LLM extraction. Model output is untrusted: every
// response goes through JSON repair and schema normalization before it becomes
// a typed result.
package extraction

import (
	"context"
	"strings"

	"github.com/projectbridge/projectbridge/internal/jsonrepair"
	"github.com/projectbridge/projectbridge/internal/llm"
	"github.com/projectbridge/projectbridge/internal/normalize"
	"github.com/projectbridge/projectbridge/internal/types"
)

// Extractor runs structured extraction against an LLM client.
type Extractor struct {
	client llm.Client
}

// New creates an Extractor backed by the given client.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractSkills extracts categorized skills from free text: a resume section,
// a job posting, or arbitrary pasted text.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) (*types.ExtractedSkills, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "input text is empty"}
	}

	prompt := llm.BuildExtractionPrompt(llm.SkillsSchema(), text)
	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "skill extraction failed", Cause: err}
	}

	return parseSkills(response)
}

// ExtractSkillsEnhanced extracts categorized skills with a per-skill
// confidence score. More expensive than ExtractSkills; callers use it when
// they need to filter weak extractions.
func (e *Extractor) ExtractSkillsEnhanced(ctx context.Context, text string) (*types.EnhancedExtractedSkills, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "input text is empty"}
	}

	prompt := llm.BuildExtractionPrompt(llm.EnhancedSkillsSchema(), text)
	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "enhanced skill extraction failed", Cause: err}
	}

	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	skills, err := normalize.Into[types.EnhancedExtractedSkills](raw, enhancedSkillsShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing enhanced skills", Cause: err}
	}
	return &skills, nil
}

// AnalyzeResume extracts skills, experience, and qualifications from resume
// text.
func (e *Extractor) AnalyzeResume(ctx context.Context, text string) (*types.ResumeAnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "resume text is empty"}
	}

	prompt := llm.BuildExtractionPrompt(llm.ResumeAnalysisSchema(), text)
	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume analysis failed", Cause: err}
	}

	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	result, err := normalize.Into[types.ResumeAnalysisResult](raw, resumeShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing resume analysis", Cause: err}
	}
	return &result, nil
}

// AnalyzeJob extracts demanded skills, qualifications, and role metadata from
// job description text.
func (e *Extractor) AnalyzeJob(ctx context.Context, text string) (*types.JobAnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "job description text is empty"}
	}

	prompt := llm.BuildExtractionPrompt(llm.JobAnalysisSchema(), text)
	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "job analysis failed", Cause: err}
	}

	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	result, err := normalize.Into[types.JobAnalysisResult](raw, jobShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing job analysis", Cause: err}
	}
	return &result, nil
}

// parseSkills repairs and normalizes a categorized-skills response. A response
// that defeats every repair strategy yields an empty skills object, not an
// error; per-category damage is isolated by the normalizer.
func parseSkills(response string) (*types.ExtractedSkills, error) {
	raw := jsonrepair.SafeParse[map[string]any](response, nil)
	skills, err := normalize.Into[types.ExtractedSkills](raw, skillsShape())
	if err != nil {
		return nil, &ParseError{Message: "normalizing extracted skills", Cause: err}
	}
	return &skills, nil
}
