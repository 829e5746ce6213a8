package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projectbridge/projectbridge/internal/matcher"
	"github.com/projectbridge/projectbridge/internal/skillgraph"
	"github.com/projectbridge/projectbridge/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match extracted skills against job requirements offline",
	Long:  "Compute a skill gap analysis from two extracted-skills JSON files (as produced by extract-skills) using only the skill knowledge graph. No LLM calls are made.",
	RunE:  runMatch,
}

var (
	matchResumeSkills string
	matchJobSkills    string
	matchTaxonomy     string
	matchOut          string
)

func init() {
	matchCmd.Flags().StringVar(&matchResumeSkills, "resume-skills", "", "Path to extracted resume skills JSON")
	matchCmd.Flags().StringVar(&matchJobSkills, "job-skills", "", "Path to extracted job skills JSON")
	matchCmd.Flags().StringVar(&matchTaxonomy, "taxonomy", "", "Path to a skill taxonomy JSON file (optional, defaults to the built-in taxonomy)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Output file for the gap analysis JSON (defaults to stdout)")

	_ = matchCmd.MarkFlagRequired("resume-skills")
	_ = matchCmd.MarkFlagRequired("job-skills")

	rootCmd.AddCommand(matchCmd)
}

func readSkillsFile(path string) (*types.ExtractedSkills, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	skills := types.NewExtractedSkills()
	if err := json.Unmarshal(data, skills); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return skills, nil
}

func runMatch(_ *cobra.Command, _ []string) error {
	resumeSkills, err := readSkillsFile(matchResumeSkills)
	if err != nil {
		return err
	}
	jobSkills, err := readSkillsFile(matchJobSkills)
	if err != nil {
		return err
	}

	var graph *skillgraph.Graph
	if matchTaxonomy != "" {
		graph, err = skillgraph.LoadFile(matchTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	} else {
		graph = skillgraph.NewDefault()
	}

	gap := matcher.New(graph).AnalyzeGap(resumeSkills.All(), jobSkills.All())

	data, err := json.MarshalIndent(gap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gap analysis: %w", err)
	}

	if matchOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(matchOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Match: %d%%. Gap analysis written to %s\n", gap.MatchPercentage, matchOut)
	return nil
}
