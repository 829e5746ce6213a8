package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		Source:     "https://example.com/job",
		SourceType: SourceURL,
		Timestamp:  "2026-01-01T00:00:00Z",
		Hash:       "abcd1234",
		WordCount:  12,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, metadata.Source, unmarshaled.Source)
	assert.Equal(t, metadata.SourceType, unmarshaled.SourceType)
	assert.Equal(t, metadata.Timestamp, unmarshaled.Timestamp)
	assert.Equal(t, metadata.Hash, unmarshaled.Hash)
	assert.Equal(t, metadata.WordCount, unmarshaled.WordCount)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	// Hash should be 64 hex characters (SHA256)
	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	content := "backend engineer with Go"
	metadata := NewMetadata(content, "/tmp/resume.txt", SourceFile)

	assert.Equal(t, "/tmp/resume.txt", metadata.Source)
	assert.Equal(t, SourceFile, metadata.SourceType)
	assert.Equal(t, 4, metadata.WordCount)
	assert.Equal(t, computeHash(content), metadata.Hash)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_PastedText(t *testing.T) {
	metadata := NewMetadata("some text", "", SourceText)

	assert.Empty(t, metadata.Source)
	assert.Equal(t, SourceText, metadata.SourceType)
	assert.NotEmpty(t, metadata.Hash)
}
