package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectbridge/projectbridge/internal/types"
)

// execute runs the root command in-process with the given args.
func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeSkillsFile(t *testing.T, dir, name string, mutate func(*types.ExtractedSkills)) string {
	t.Helper()
	skills := types.NewExtractedSkills()
	mutate(skills)
	data, err := json.Marshal(skills)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestMatchCommand_WritesGapAnalysis(t *testing.T) {
	dir := t.TempDir()
	resumeSkills := writeSkillsFile(t, dir, "resume.json", func(s *types.ExtractedSkills) {
		s.Languages = []string{"Go", "JavaScript"}
	})
	jobSkills := writeSkillsFile(t, dir, "job.json", func(s *types.ExtractedSkills) {
		s.Languages = []string{"Go"}
		s.Platforms = []string{"Kubernetes"}
	})
	outPath := filepath.Join(dir, "gap.json")

	err := execute("match",
		"--resume-skills", resumeSkills,
		"--job-skills", jobSkills,
		"--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var gap types.SkillGapAnalysisResult
	require.NoError(t, json.Unmarshal(data, &gap))
	assert.Equal(t, 50, gap.MatchPercentage)
	require.Len(t, gap.MissingSkills, 1)
	assert.Equal(t, "Kubernetes", gap.MissingSkills[0].Name)
	assert.NotEmpty(t, gap.Recommendations)
}

func TestMatchCommand_CustomTaxonomy(t *testing.T) {
	dir := t.TempDir()
	resumeSkills := writeSkillsFile(t, dir, "resume.json", func(s *types.ExtractedSkills) {
		s.Languages = []string{"Golang"}
	})
	jobSkills := writeSkillsFile(t, dir, "job.json", func(s *types.ExtractedSkills) {
		s.Languages = []string{"Go"}
	})
	taxonomyPath := filepath.Join(dir, "taxonomy.json")
	require.NoError(t, os.WriteFile(taxonomyPath, []byte(`{
		"skills": [{"id": "go", "name": "Go", "category": "programming_language", "aliases": ["golang"]}]
	}`), 0644))
	outPath := filepath.Join(dir, "gap.json")

	err := execute("match",
		"--resume-skills", resumeSkills,
		"--job-skills", jobSkills,
		"--taxonomy", taxonomyPath,
		"--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var gap types.SkillGapAnalysisResult
	require.NoError(t, json.Unmarshal(data, &gap))
	assert.Equal(t, 100, gap.MatchPercentage, "alias resolves through the custom taxonomy")
}

func TestMatchCommand_MissingSkillsFile(t *testing.T) {
	dir := t.TempDir()
	jobSkills := writeSkillsFile(t, dir, "job.json", func(s *types.ExtractedSkills) {
		s.Languages = []string{"Go"}
	})

	err := execute("match",
		"--resume-skills", filepath.Join(dir, "missing.json"),
		"--job-skills", jobSkills)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
