package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []string{"gap-analysis", "resume-summary", "qualification-comparison"} {
		prompt, err := Get(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt, key)
	}
}

func TestGet_GapAnalysisContent(t *testing.T) {
	prompt, err := Get("gap-analysis")
	require.NoError(t, err)
	assert.Contains(t, prompt, "skill gap analysis")
	assert.Contains(t, prompt, "{{.ResumeSkills}}")
	assert.Contains(t, prompt, "{{.JobSkills}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	assert.NotPanics(t, func() {
		prompt := MustGet("gap-analysis")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Skills: {{.ResumeSkills}} versus {{.JobSkills}}"
	data := map[string]string{
		"ResumeSkills": "Go, SQL",
		"JobSkills":    "Go, React",
	}

	result := Format(template, data)
	assert.Equal(t, "Skills: Go, SQL versus Go, React", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}
