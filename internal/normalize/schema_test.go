package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillsShape() Shape {
	return Shape{
		"technical": {Kind: StringList},
		"soft":      {Kind: StringList},
	}
}

func TestApply_NilRawYieldsDefaults(t *testing.T) {
	shape := Shape{
		"name":    {Kind: String, Default: "unknown"},
		"score":   {Kind: Number},
		"skills":  {Kind: StringList},
		"details": {Kind: Object, Fields: Shape{"level": {Kind: String}}},
	}

	got := Apply(nil, shape)

	assert.Equal(t, "unknown", got["name"])
	assert.Equal(t, 0.0, got["score"])
	assert.Equal(t, []any{}, got["skills"])
	assert.Equal(t, map[string]any{"level": ""}, got["details"])
}

// One corrupted field must not take its valid siblings down with it.
func TestApply_FieldLevelIsolation(t *testing.T) {
	raw := map[string]any{
		"technical": "notAnArray",
		"soft":      []any{"Leadership"},
	}

	got := Apply(raw, skillsShape())

	assert.Equal(t, []any{}, got["technical"])
	assert.Equal(t, []any{"Leadership"}, got["soft"])
}

func TestApply_MissingFieldGetsDefault(t *testing.T) {
	raw := map[string]any{"technical": []any{"Go"}}

	got := Apply(raw, skillsShape())

	assert.Equal(t, []any{"Go"}, got["technical"])
	assert.Equal(t, []any{}, got["soft"])
}

func TestApply_NumericStringCoercion(t *testing.T) {
	shape := Shape{"match_percentage": {Kind: Number}}

	got := Apply(map[string]any{"match_percentage": "85"}, shape)
	assert.Equal(t, 85.0, got["match_percentage"])

	got = Apply(map[string]any{"match_percentage": "not a number"}, shape)
	assert.Equal(t, 0.0, got["match_percentage"])
}

func TestApply_NumberToStringCoercion(t *testing.T) {
	shape := Shape{"level": {Kind: String}}
	got := Apply(map[string]any{"level": 3.0}, shape)
	assert.Equal(t, "3", got["level"])
}

func TestApply_StringListFiltersNonScalars(t *testing.T) {
	shape := Shape{"skills": {Kind: StringList}}
	raw := map[string]any{
		"skills": []any{"Go", 2.0, map[string]any{"nested": true}, "React"},
	}

	got := Apply(raw, shape)
	assert.Equal(t, []any{"Go", "2", "React"}, got["skills"])
}

func TestApply_NestedObjectRecursion(t *testing.T) {
	shape := Shape{
		"qualifications": {Kind: Object, Fields: Shape{
			"required":  {Kind: StringList},
			"preferred": {Kind: StringList},
		}},
	}
	raw := map[string]any{
		"qualifications": map[string]any{
			"required":  []any{"BS degree"},
			"preferred": "notAnArray",
		},
	}

	got := Apply(raw, shape)
	quals, ok := got["qualifications"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"BS degree"}, quals["required"])
	assert.Equal(t, []any{}, quals["preferred"])
}

func TestApply_ObjectListNormalizesElements(t *testing.T) {
	shape := Shape{
		"missing_skills": {Kind: ObjectList, Fields: Shape{
			"name":     {Kind: String},
			"priority": {Kind: String, Default: "Medium"},
		}},
	}
	raw := map[string]any{
		"missing_skills": []any{
			map[string]any{"name": "Docker", "priority": "High"},
			map[string]any{"name": "Kubernetes"},
			"not an object",
		},
	}

	got := Apply(raw, shape)
	list, ok := got["missing_skills"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, map[string]any{"name": "Docker", "priority": "High"}, list[0])
	assert.Equal(t, map[string]any{"name": "Kubernetes", "priority": "Medium"}, list[1])
}

func TestApply_DropsUnknownFields(t *testing.T) {
	got := Apply(map[string]any{"unexpected": 1, "technical": []any{"Go"}}, skillsShape())
	_, exists := got["unexpected"]
	assert.False(t, exists)
}

func TestInto_RoundTripIntoStruct(t *testing.T) {
	type doc struct {
		Technical []string `json:"technical"`
		Soft      []string `json:"soft"`
	}

	raw := map[string]any{"technical": []any{"Go"}, "soft": "corrupt"}
	got, err := Into[doc](raw, skillsShape())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.Technical)
	assert.Equal(t, []string{}, got.Soft)
}
