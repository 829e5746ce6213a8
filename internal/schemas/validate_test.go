package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	}
}`

// writeFile writes content to a file in a temp dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test", "age": 30}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"age": 30}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test", "age": "thirty"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateBytes(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	err := ValidateBytes(schemaPath, []byte(`{"name": "test"}`))
	assert.NoError(t, err)

	err = ValidateBytes(schemaPath, []byte(`{"age": 30}`))
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateBytes_GapAnalysisSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/skill_gap_analysis.schema.json")
	require.NotEmpty(t, schemaPath, "skill_gap_analysis.schema.json should be resolvable from the package dir")

	valid := []byte(`{
		"match_percentage": 67,
		"matched_skills": [{"name": "Go", "proficiency": "advanced"}],
		"missing_skills": [{"name": "Kubernetes", "priority": "High"}],
		"missing_qualifications": [],
		"missing_experience": [],
		"recommendations": [
			{"type": "Course", "description": "Take a Kubernetes course", "time_to_acquire": "1 month", "priority": "High"}
		],
		"summary": "Solid backend match with an infrastructure gap."
	}`)
	assert.NoError(t, ValidateBytes(schemaPath, valid))

	outOfRange := []byte(`{
		"match_percentage": 140,
		"matched_skills": [],
		"missing_skills": [],
		"missing_qualifications": [],
		"missing_experience": [],
		"recommendations": [],
		"summary": ""
	}`)
	err := ValidateBytes(schemaPath, outOfRange)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateBytes_TaxonomySchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/skill_taxonomy.schema.json")
	require.NotEmpty(t, schemaPath)

	valid := []byte(`{
		"skills": [
			{"id": "go", "name": "Go", "category": "programming_language", "aliases": ["golang"]}
		],
		"relationships": [
			{"source_id": "go", "target_id": "go", "type": "similar_to", "strength": 1.0}
		]
	}`)
	assert.NoError(t, ValidateBytes(schemaPath, valid))

	badRelation := []byte(`{
		"skills": [{"id": "go", "name": "Go", "category": "programming_language"}],
		"relationships": [{"source_id": "go", "target_id": "go", "type": "friend_of"}]
	}`)
	err := ValidateBytes(schemaPath, badRelation)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "test"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "match_percentage", Message: "must be an integer"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "match_percentage")
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["skills"],
		"properties": {
			"skills": {
				"type": "object",
				"required": ["technical"],
				"properties": {
					"technical": {"type": "array"}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"skills": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, validationErr.Errors[0].Field, "skills")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
