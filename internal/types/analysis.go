// Package types provides type definitions for structured data used throughout the projectbridge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeAnalysisResult represents the structured output of resume analysis
type ResumeAnalysisResult struct {
	Skills         *ExtractedSkills `json:"skills"`
	Experience     []Experience     `json:"experience"`
	Qualifications []string         `json:"qualifications"`
	Summary        string           `json:"summary"`
}

// NewResumeAnalysisResult returns a ResumeAnalysisResult with all collections initialized.
func NewResumeAnalysisResult() *ResumeAnalysisResult {
	return &ResumeAnalysisResult{
		Skills:         NewExtractedSkills(),
		Experience:     []Experience{},
		Qualifications: []string{},
	}
}

// Experience represents a single work experience entry extracted from a resume
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// JobAnalysisResult represents the structured output of job description analysis
type JobAnalysisResult struct {
	RoleTitle      string           `json:"role_title"`
	Company        string           `json:"company,omitempty"`
	Skills         *ExtractedSkills `json:"skills"`
	Qualifications *Qualifications  `json:"qualifications"`
	Experience     []string         `json:"experience"`
	Summary        string           `json:"summary"`
}

// NewJobAnalysisResult returns a JobAnalysisResult with all collections initialized.
func NewJobAnalysisResult() *JobAnalysisResult {
	return &JobAnalysisResult{
		Skills:         NewExtractedSkills(),
		Qualifications: &Qualifications{Required: []string{}, Preferred: []string{}},
		Experience:     []string{},
	}
}

// Qualifications separates required from preferred qualifications
type Qualifications struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// SkillGapAnalysisResult is the final comparison between a candidate's skills
// and a job's requirements.
type SkillGapAnalysisResult struct {
	MatchPercentage       int              `json:"match_percentage"` // 0-100
	MatchedSkills         []MatchedSkill   `json:"matched_skills"`
	MissingSkills         []MissingSkill   `json:"missing_skills"`
	MissingQualifications []string         `json:"missing_qualifications"`
	MissingExperience     []string         `json:"missing_experience"`
	Recommendations       []Recommendation `json:"recommendations"`
	Summary               string           `json:"summary"`
}

// NewSkillGapAnalysisResult returns a SkillGapAnalysisResult with all collections initialized.
func NewSkillGapAnalysisResult() *SkillGapAnalysisResult {
	return &SkillGapAnalysisResult{
		MatchedSkills:         []MatchedSkill{},
		MissingSkills:         []MissingSkill{},
		MissingQualifications: []string{},
		MissingExperience:     []string{},
		Recommendations:       []Recommendation{},
	}
}

// MatchedSkill is a required skill the candidate already covers
type MatchedSkill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
	Relevance   string `json:"relevance,omitempty"`
}

// MissingSkill is a required skill the candidate lacks
type MissingSkill struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Priority string `json:"priority"` // High, Medium, Low
	Context  string `json:"context,omitempty"`
}

// Recommendation is a suggested learning action for closing a skill gap
type Recommendation struct {
	Type          string `json:"type"` // Project, Course, Hands-on Practice, Learning Resource
	Description   string `json:"description"`
	TimeToAcquire string `json:"time_to_acquire"`
	Priority      string `json:"priority"` // High, Medium, Low
}
