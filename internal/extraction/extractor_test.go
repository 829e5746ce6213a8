package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectbridge/projectbridge/internal/llm"
)

// fakeClient returns canned responses and records the prompts it was given.
type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	lastTier   llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestExtractSkills_ValidResponse(t *testing.T) {
	client := &fakeClient{response: `{"technical": ["Go", "SQL"], "soft": ["Leadership"]}`}
	extractor := New(client)

	skills, err := extractor.ExtractSkills(context.Background(), "some resume text")
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "SQL"}, skills.Technical)
	assert.Equal(t, []string{"Leadership"}, skills.Soft)
	assert.Empty(t, skills.Frameworks)
	assert.Equal(t, llm.TierLite, client.lastTier)
}

func TestExtractSkills_MalformedResponseIsRepaired(t *testing.T) {
	// Missing comma between array elements and a trailing comma.
	client := &fakeClient{response: `{"technical": ["React" "Node.js"], "soft": ["Leadership"],}`}
	extractor := New(client)

	skills, err := extractor.ExtractSkills(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node.js"}, skills.Technical)
	assert.Equal(t, []string{"Leadership"}, skills.Soft)
}

func TestExtractSkills_GarbageResponseYieldsEmptySkills(t *testing.T) {
	client := &fakeClient{response: "I could not process that request."}
	extractor := New(client)

	skills, err := extractor.ExtractSkills(context.Background(), "text")
	require.NoError(t, err)

	assert.Empty(t, skills.All())
	assert.NotNil(t, skills.Technical)
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	extractor := New(&fakeClient{})

	_, err := extractor.ExtractSkills(context.Background(), "   ")
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestExtractSkills_APIError(t *testing.T) {
	cause := errors.New("API key not valid")
	extractor := New(&fakeClient{err: cause})

	_, err := extractor.ExtractSkills(context.Background(), "text")
	require.Error(t, err)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, cause)
}

func TestExtractSkillsEnhanced_ConfidenceScores(t *testing.T) {
	client := &fakeClient{response: `{
		"technical": [{"name": "Go", "confidence": 0.95}, {"name": "Rust", "confidence": 0.4}],
		"soft": [{"name": "Leadership", "confidence": 0.8}]
	}`}
	extractor := New(client)

	skills, err := extractor.ExtractSkillsEnhanced(context.Background(), "resume text")
	require.NoError(t, err)

	require.Len(t, skills.Technical, 2)
	assert.Equal(t, "Go", skills.Technical[0].Name)
	assert.InDelta(t, 0.95, skills.Technical[0].Confidence, 0.001)
	assert.Equal(t, []string{"Go", "Leadership"}, skills.AboveThreshold(0.5))
	assert.Equal(t, llm.TierStandard, client.lastTier)
}

func TestExtractSkillsEnhanced_EmptyInput(t *testing.T) {
	extractor := New(&fakeClient{})

	_, err := extractor.ExtractSkillsEnhanced(context.Background(), "")
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAnalyzeResume_FieldDamageIsIsolated(t *testing.T) {
	// "skills.technical" is wrongly a string; other fields must survive.
	client := &fakeClient{response: `{
		"skills": {"technical": "notAnArray", "soft": ["Communication"]},
		"experience": [{"title": "Backend Engineer", "company": "Acme", "technologies": ["Go"]}],
		"qualifications": ["BSc Computer Science"],
		"summary": "Backend engineer with five years of Go experience."
	}`}
	extractor := New(client)

	result, err := extractor.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Empty(t, result.Skills.Technical)
	assert.Equal(t, []string{"Communication"}, result.Skills.Soft)
	require.Len(t, result.Experience, 1)
	assert.Equal(t, "Backend Engineer", result.Experience[0].Title)
	assert.Equal(t, []string{"Go"}, result.Experience[0].Technologies)
	assert.Equal(t, []string{"BSc Computer Science"}, result.Qualifications)
	assert.Equal(t, llm.TierStandard, client.lastTier)
}

func TestAnalyzeResume_GarbageResponseYieldsDefaults(t *testing.T) {
	extractor := New(&fakeClient{response: "```\ntotal nonsense\n```"})

	result, err := extractor.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)

	require.NotNil(t, result.Skills)
	assert.Empty(t, result.Skills.All())
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Summary)
}

func TestAnalyzeJob_NestedQualifications(t *testing.T) {
	client := &fakeClient{response: `{
		"role_title": "Senior Backend Engineer",
		"company": "Acme",
		"skills": {"technical": ["Go"], "databases": ["PostgreSQL"]},
		"qualifications": {"required": ["5+ years backend"], "preferred": ["Kubernetes experience"]},
		"experience": ["5+ years backend development"],
		"summary": "Senior backend role."
	}`}
	extractor := New(client)

	result, err := extractor.AnalyzeJob(context.Background(), "job text")
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", result.RoleTitle)
	assert.Equal(t, []string{"Go"}, result.Skills.Technical)
	require.NotNil(t, result.Qualifications)
	assert.Equal(t, []string{"5+ years backend"}, result.Qualifications.Required)
	assert.Equal(t, []string{"Kubernetes experience"}, result.Qualifications.Preferred)
}

func TestAnalyzeJob_FencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"role_title\": \"Engineer\", \"skills\": {\"technical\": [\"Go\"]}}\n```"}
	extractor := New(client)

	result, err := extractor.AnalyzeJob(context.Background(), "job text")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", result.RoleTitle)
	assert.Equal(t, []string{"Go"}, result.Skills.Technical)
}
