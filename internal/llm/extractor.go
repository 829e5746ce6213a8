// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeSkills", "JobAnalysis")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// skillCategoryFields lists the categorized skill arrays shared by resume and
// job skill extraction.
func skillCategoryFields() []SchemaField {
	return []SchemaField{
		{Name: "technical", Type: "[\"string\"]", Description: "Programming languages and general technical skills", Required: true},
		{Name: "frameworks", Type: "[\"string\"]", Description: "Frameworks and libraries (e.g., React, Django)", Required: false},
		{Name: "databases", Type: "[\"string\"]", Description: "Databases and data stores", Required: false},
		{Name: "platforms", Type: "[\"string\"]", Description: "Platforms and cloud services (e.g., AWS, Kubernetes)", Required: false},
		{Name: "tools", Type: "[\"string\"]", Description: "Developer tools (e.g., Git, Docker, Jira)", Required: false},
		{Name: "methodologies", Type: "[\"string\"]", Description: "Methodologies and practices (e.g., Agile, TDD)", Required: false},
		{Name: "soft", Type: "[\"string\"]", Description: "Soft skills (e.g., Leadership, Communication)", Required: false},
		{Name: "languages", Type: "[\"string\"]", Description: "Spoken/written human languages", Required: false},
		{Name: "other", Type: "[\"string\"]", Description: "Skills that fit no other category", Required: false},
		{Name: "ai_frameworks", Type: "[\"string\"]", Description: "AI/ML frameworks (e.g., TensorFlow, PyTorch)", Required: false},
		{Name: "ai_concepts", Type: "[\"string\"]", Description: "AI/ML concepts (e.g., RAG, fine-tuning)", Required: false},
	}
}

// SkillsSchema returns the extraction schema for categorized skill lists from
// free text (a resume section, a job posting, or arbitrary pasted text).
func SkillsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ExtractedSkills",
		Description: `You are an expert technical recruiter. COPY SKILL NAMES VERBATIM - do not paraphrase or expand abbreviations.
Your task is to extract every skill mentioned in the text and place it in the right category.
A skill mentioned in multiple contexts appears once, in its most specific category.`,
		Fields: skillCategoryFields(),
	}
}

// EnhancedSkillsSchema returns the extraction schema for categorized skills
// with a per-skill extraction confidence. Slower and more verbose than
// SkillsSchema; used when the caller needs to filter weak extractions.
func EnhancedSkillsSchema() ExtractionSchema {
	base := skillCategoryFields()
	fields := make([]SchemaField, 0, len(base))
	for _, f := range base {
		if f.Name == "ai_frameworks" || f.Name == "ai_concepts" {
			continue
		}
		f.Type = `[{"name": "string", "confidence": number}]`
		f.Description += "; confidence is 0.0-1.0, how certain you are the text states this skill"
		fields = append(fields, f)
	}
	return ExtractionSchema{
		Name: "EnhancedExtractedSkills",
		Description: `You are an expert technical recruiter. COPY SKILL NAMES VERBATIM - do not paraphrase or expand abbreviations.
Your task is to extract every skill mentioned in the text, place it in the right category, and rate how confident you are that the text actually states it.
Explicitly listed skills get confidence near 1.0; skills only implied by context get lower scores.`,
		Fields: fields,
	}
}

// skillsObjectType renders the categorized-skills object as an inline type
// hint for nested use inside larger schemas.
const skillsObjectType = `{"technical": ["string"], "frameworks": ["string"], "databases": ["string"], "platforms": ["string"], "tools": ["string"], "methodologies": ["string"], "soft": ["string"], "languages": ["string"], "other": ["string"], "ai_frameworks": ["string"], "ai_concepts": ["string"]}`

// ResumeAnalysisSchema returns the extraction schema for a full resume:
// categorized skills plus experience and qualifications.
func ResumeAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeAnalysis",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract skills, work experience, and qualifications from a resume.
IMPORTANT: Preserve the exact wording from the original text.`,
		Fields: []SchemaField{
			{Name: "skills", Type: skillsObjectType, Description: "Every skill mentioned, each in its most specific category", Required: true},
			{Name: "experience", Type: "[{\"title\": \"string\", \"company\": \"string\", \"duration\": \"string\", \"technologies\": [\"string\"], \"highlights\": [\"string\"]}]", Description: "Work history entries, most recent first", Required: false},
			{Name: "qualifications", Type: "[\"string\"]", Description: "Degrees, certifications, and credentials - copy verbatim", Required: false},
			{Name: "summary", Type: "\"string\"", Description: "One-sentence professional summary", Required: false},
		},
	}
}

// JobAnalysisSchema returns the extraction schema for job postings: demanded
// skills, required versus preferred qualifications, and role metadata.
func JobAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobAnalysis",
		Description: `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract the skills and qualifications a role demands, separating hard requirements from preferences.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{Name: "role_title", Type: "\"string\"", Description: "Job title", Required: true},
			{Name: "company", Type: "\"string\"", Description: "Company name if present", Required: false},
			{Name: "skills", Type: skillsObjectType, Description: "Every skill the role demands, each in its most specific category", Required: true},
			{Name: "qualifications", Type: "{\"required\": [\"string\"], \"preferred\": [\"string\"]}", Description: "Qualifications split into hard requirements and preferences - copy verbatim", Required: true},
			{Name: "experience", Type: "[\"string\"]", Description: "Experience requirements (e.g., '5+ years backend development')", Required: false},
			{Name: "summary", Type: "\"string\"", Description: "One-sentence role summary", Required: false},
		},
	}
}
