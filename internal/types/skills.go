// Package types provides type definitions for structured data used throughout the projectbridge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractedSkills represents categorized skills extracted from a resume or job description.
// Every field is initialized to an empty slice before LLM output is merged in, so a
// partially parsed response never leaves a category nil.
type ExtractedSkills struct {
	Technical     []string `json:"technical"`
	Soft          []string `json:"soft"`
	Tools         []string `json:"tools"`
	Frameworks    []string `json:"frameworks"`
	Languages     []string `json:"languages"`
	Databases     []string `json:"databases"`
	Methodologies []string `json:"methodologies"`
	Platforms     []string `json:"platforms"`
	Other         []string `json:"other"`

	// AI-specific subcategories (optional, populated for AI/ML roles)
	AIFrameworks []string `json:"ai_frameworks,omitempty"`
	AIConcepts   []string `json:"ai_concepts,omitempty"`
}

// NewExtractedSkills returns an ExtractedSkills with every category initialized
// to an empty slice.
func NewExtractedSkills() *ExtractedSkills {
	return &ExtractedSkills{
		Technical:     []string{},
		Soft:          []string{},
		Tools:         []string{},
		Frameworks:    []string{},
		Languages:     []string{},
		Databases:     []string{},
		Methodologies: []string{},
		Platforms:     []string{},
		Other:         []string{},
	}
}

// All returns every extracted skill across all categories, in category order.
// Duplicates across categories are preserved; callers dedupe at the matching
// boundary where normalization rules live.
func (s *ExtractedSkills) All() []string {
	var all []string
	for _, category := range [][]string{
		s.Technical, s.Soft, s.Tools, s.Frameworks, s.Languages,
		s.Databases, s.Methodologies, s.Platforms, s.Other,
		s.AIFrameworks, s.AIConcepts,
	} {
		all = append(all, category...)
	}
	return all
}

// ConfidentSkill is a skill name with an extraction confidence, used by the
// enhanced extraction variant.
type ConfidentSkill struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
}

// EnhancedExtractedSkills mirrors ExtractedSkills but carries per-skill
// extraction confidence.
type EnhancedExtractedSkills struct {
	Technical     []ConfidentSkill `json:"technical"`
	Soft          []ConfidentSkill `json:"soft"`
	Tools         []ConfidentSkill `json:"tools"`
	Frameworks    []ConfidentSkill `json:"frameworks"`
	Languages     []ConfidentSkill `json:"languages"`
	Databases     []ConfidentSkill `json:"databases"`
	Methodologies []ConfidentSkill `json:"methodologies"`
	Platforms     []ConfidentSkill `json:"platforms"`
	Other         []ConfidentSkill `json:"other"`
}

// All returns every confident skill across all categories, in category order.
func (s *EnhancedExtractedSkills) All() []ConfidentSkill {
	var all []ConfidentSkill
	for _, category := range [][]ConfidentSkill{
		s.Technical, s.Soft, s.Tools, s.Frameworks, s.Languages,
		s.Databases, s.Methodologies, s.Platforms, s.Other,
	} {
		all = append(all, category...)
	}
	return all
}

// AboveThreshold returns the names of skills whose confidence meets or
// exceeds min, preserving category order.
func (s *EnhancedExtractedSkills) AboveThreshold(min float64) []string {
	var names []string
	for _, skill := range s.All() {
		if skill.Confidence >= min {
			names = append(names, skill.Name)
		}
	}
	return names
}
