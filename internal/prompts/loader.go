// Package prompts holds the analysis prompt templates: the gap-analysis
// narrative and the qualification comparison. Templates live in analysis.json
// and are embedded at compile time so installed binaries carry them.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed analysis.json
var analysisJSON []byte

// templates parses the embedded file once; every Get shares the result.
var templates = sync.OnceValues(func() (map[string]string, error) {
	var parsed map[string]string
	if err := json.Unmarshal(analysisJSON, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embedded prompts: %w", err)
	}
	return parsed, nil
})

// Get returns the prompt template stored under key (e.g. "gap-analysis").
func Get(key string) (string, error) {
	parsed, err := templates()
	if err != nil {
		return "", err
	}
	template, exists := parsed[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// MustGet is Get for templates the caller cannot run without. It panics on a
// missing key, which only happens when analysis.json and the caller disagree.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces template placeholders in the form {{.Key}} with values from
// data. Placeholders without a matching key are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
