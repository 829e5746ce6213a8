package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExtractionPrompt_IncludesSchemaAndInput(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract the things.",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "the title", Required: true},
			{Name: "tags", Type: "[\"string\"]"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.True(t, strings.HasPrefix(prompt, "Extract the things."))
	assert.Contains(t, prompt, "\"title\": \"string\" (required) // the title")
	assert.Contains(t, prompt, "\"tags\": [\"string\"]")
	assert.Contains(t, prompt, "some input text")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildExtractionPrompt_DefaultsTypeToString(t *testing.T) {
	schema := ExtractionSchema{
		Description: "desc",
		Fields:      []SchemaField{{Name: "plain"}},
	}
	prompt := BuildExtractionPrompt(schema, "x")
	assert.Contains(t, prompt, "\"plain\": string")
}

func TestSkillsSchema_CoversAllCategories(t *testing.T) {
	schema := SkillsSchema()

	names := make(map[string]bool)
	for _, f := range schema.Fields {
		names[f.Name] = true
	}
	for _, want := range []string{
		"technical", "frameworks", "databases", "platforms",
		"tools", "methodologies", "soft", "languages", "other",
		"ai_frameworks", "ai_concepts",
	} {
		assert.True(t, names[want], "missing field %s", want)
	}
}

func TestJobAnalysisSchema_SplitsQualifications(t *testing.T) {
	schema := JobAnalysisSchema()

	var quals *SchemaField
	for i := range schema.Fields {
		if schema.Fields[i].Name == "qualifications" {
			quals = &schema.Fields[i]
		}
	}
	require.NotNil(t, quals)
	assert.True(t, quals.Required)
	assert.Contains(t, quals.Type, "\"required\"")
	assert.Contains(t, quals.Type, "\"preferred\"")
}

func TestResumeAnalysisSchema_Fields(t *testing.T) {
	schema := ResumeAnalysisSchema()

	names := make(map[string]bool)
	for _, f := range schema.Fields {
		names[f.Name] = true
	}
	assert.True(t, names["skills"])
	assert.True(t, names["experience"])
	assert.True(t, names["qualifications"])
	assert.True(t, names["summary"])
}
