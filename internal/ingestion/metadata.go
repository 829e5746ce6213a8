package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SourceType identifies where ingested text came from
type SourceType string

// Source type constants
const (
	SourceText SourceType = "text"
	SourceFile SourceType = "file"
	SourceURL  SourceType = "url"
)

// Metadata describes an ingested document: a resume, a job posting, or pasted
// free text.
type Metadata struct {
	Source     string     `json:"source,omitempty"` // file path or URL
	SourceType SourceType `json:"source_type"`
	Timestamp  string     `json:"timestamp"` // RFC3339 format
	Hash       string     `json:"hash"`      // SHA256 hex digest of cleaned text
	Platform   string     `json:"platform,omitempty"`
	WordCount  int        `json:"word_count"`
}

// NewMetadata creates Metadata for cleaned content with the current timestamp.
func NewMetadata(content, source string, sourceType SourceType) *Metadata {
	return &Metadata{
		Source:     source,
		SourceType: sourceType,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		WordCount:  len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
