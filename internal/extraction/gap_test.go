package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectbridge/projectbridge/internal/llm"
	"github.com/projectbridge/projectbridge/internal/types"
)

func TestGapAnalysis_ParsesResult(t *testing.T) {
	client := &fakeClient{response: `{
		"match_percentage": 999,
		"matched_skills": [{"name": "Go", "relevance": "direct"}],
		"missing_skills": [{"name": "Kubernetes", "priority": "High", "context": "devops"}],
		"recommendations": [{"type": "Hands-on Practice", "description": "Deploy a service to a local cluster", "time_to_acquire": "2-4 weeks", "priority": "High"}],
		"summary": "Strong backend match with an infrastructure gap."
	}`}
	extractor := New(client)

	resume := types.NewExtractedSkills()
	resume.Technical = []string{"Go"}
	job := types.NewExtractedSkills()
	job.Technical = []string{"Go"}
	job.Tools = []string{"Kubernetes"}

	result, err := extractor.GapAnalysis(context.Background(), resume, job)
	require.NoError(t, err)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "Go", result.MatchedSkills[0].Name)
	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, "Kubernetes", result.MissingSkills[0].Name)
	assert.Equal(t, "High", result.MissingSkills[0].Priority)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "2-4 weeks", result.Recommendations[0].TimeToAcquire)
	assert.Equal(t, llm.TierAdvanced, client.lastTier)

	// The model's own percentage passes through here; the matcher overrides
	// it before the result reaches callers.
	assert.Equal(t, 999, result.MatchPercentage)

	assert.Contains(t, client.lastPrompt, "\"Go\"")
	assert.Contains(t, client.lastPrompt, "\"Kubernetes\"")
}

func TestGapAnalysis_MissingPriorityDefaultsToMedium(t *testing.T) {
	client := &fakeClient{response: `{"missing_skills": [{"name": "Terraform"}]}`}
	extractor := New(client)

	result, err := extractor.GapAnalysis(context.Background(), types.NewExtractedSkills(), types.NewExtractedSkills())
	require.NoError(t, err)

	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, "Medium", result.MissingSkills[0].Priority)
}

func TestGapAnalysis_NilInputs(t *testing.T) {
	extractor := New(&fakeClient{})

	_, err := extractor.GapAnalysis(context.Background(), nil, types.NewExtractedSkills())
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCompareQualifications_SplitsMetAndUnmet(t *testing.T) {
	client := &fakeClient{response: `{"met": ["5+ years backend"], "unmet": ["Security clearance"]}`}
	extractor := New(client)

	experience := []types.Experience{{Title: "Backend Engineer", Company: "Acme", Duration: "6 years"}}
	result, err := extractor.CompareQualifications(context.Background(), experience, []string{"5+ years backend", "Security clearance"})
	require.NoError(t, err)

	assert.Equal(t, []string{"5+ years backend"}, result.Met)
	assert.Equal(t, []string{"Security clearance"}, result.Unmet)
	assert.Contains(t, client.lastPrompt, "Backend Engineer at Acme (6 years)")
}

func TestCompareQualifications_NoQualificationsSkipsCall(t *testing.T) {
	client := &fakeClient{response: "should never be used"}
	extractor := New(client)

	result, err := extractor.CompareQualifications(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Met)
	assert.Empty(t, result.Unmet)
	assert.Empty(t, client.lastPrompt)
}

func TestFormatExperience_Empty(t *testing.T) {
	assert.Equal(t, "(none listed)", formatExperience(nil))
}
