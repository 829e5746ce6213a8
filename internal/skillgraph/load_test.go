package skillgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTaxonomy = `{
  "skills": [
    {"id": "rust", "name": "Rust", "category": "programming_language", "popularity": 60},
    {"id": "wasm", "name": "WebAssembly", "aliases": ["WASM"], "category": "platform", "popularity": 40}
  ],
  "relationships": [
    {"source_id": "wasm", "target_id": "rust", "type": "used_with", "strength": 0.6}
  ]
}`

func TestLoadBytes_BuildsGraph(t *testing.T) {
	g, err := LoadBytes([]byte(sampleTaxonomy))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
	require.NotNil(t, g.FindSkillByName("wasm"))
	assert.True(t, g.IsRelatedTo("rust", "wasm", Requires))
}

func TestLoadBytes_InvalidJSON(t *testing.T) {
	_, err := LoadBytes([]byte("{not json"))
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadBytes_EmptySkills(t *testing.T) {
	_, err := LoadBytes([]byte(`{"skills": [], "relationships": []}`))
	require.Error(t, err)
}

func TestLoadBytes_MissingSkillID(t *testing.T) {
	_, err := LoadBytes([]byte(`{"skills": [{"name": "Rust"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id or name")
}

func TestLoadBytes_DanglingRelationship(t *testing.T) {
	input := `{
	  "skills": [{"id": "rust", "name": "Rust"}],
	  "relationships": [{"source_id": "rust", "target_id": "ghost", "type": "requires"}]
	}`
	_, err := LoadBytes([]byte(input))
	require.Error(t, err)
	var unknownErr *UnknownNodeError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleTaxonomy), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

func TestLoadFile_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		taxonomy string
	}{
		{
			"unknown category",
			`{"skills": [{"id": "rust", "name": "Rust", "category": "hobby"}]}`,
		},
		{
			"unknown relationship type",
			`{
			  "skills": [
			    {"id": "a", "name": "A", "category": "tool"},
			    {"id": "b", "name": "B", "category": "tool"}
			  ],
			  "relationships": [{"source_id": "a", "target_id": "b", "type": "friend_of"}]
			}`,
		},
		{
			"strength out of range",
			`{
			  "skills": [
			    {"id": "a", "name": "A", "category": "tool"},
			    {"id": "b", "name": "B", "category": "tool"}
			  ],
			  "relationships": [{"source_id": "a", "target_id": "b", "type": "requires", "strength": 1.5}]
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "taxonomy.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.taxonomy), 0o644))

			_, err := LoadFile(path)
			require.Error(t, err)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), "taxonomy schema")
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
