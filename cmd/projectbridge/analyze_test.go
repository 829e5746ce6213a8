package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommand_RequiresResume(t *testing.T) {
	err := execute("analyze", "--job", "job.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestAnalyzeCommand_JobSourcesMutuallyExclusive(t *testing.T) {
	err := execute("analyze",
		"--resume", "resume.txt",
		"--job", "job.txt",
		"--job-url", "https://example.com/job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestAnalyzeCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PROJECTBRIDGE_API_KEY", "")

	err := execute("analyze",
		"--resume", "resume.txt",
		"--job", "job.txt",
		"--job-url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--api-key")
}

func TestAnalyzeCommand_InvalidConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{ not json"), 0644))

	err := execute("analyze", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestAnalyzeCommand_ConfigProvidesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PROJECTBRIDGE_API_KEY", "")

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Go developer"), 0644))
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Go role"), 0644))
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"resume": "`+resumePath+`",
		"job": "`+jobPath+`"
	}`), 0644))

	// Unset flags fall back to the config file: resume and job come from it,
	// so the only thing stopping the run is the missing API key.
	err := execute("analyze", "--config", configPath,
		"--resume", "", "--job", "", "--job-url", "")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "--resume is required")
	assert.Contains(t, err.Error(), "--api-key")
}

func TestAnalyzeCommand_ConfigMutualExclusion(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job text"), 0644))
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"job": "`+jobPath+`",
		"job_url": "https://example.com/job"
	}`), 0644))

	err := execute("analyze", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
