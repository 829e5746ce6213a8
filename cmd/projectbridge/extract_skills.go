package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projectbridge/projectbridge/internal/extraction"
	"github.com/projectbridge/projectbridge/internal/ingestion"
	"github.com/projectbridge/projectbridge/internal/llm"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract categorized skills from a single document",
	Long:  "Ingest a resume or job description, extract categorized skills with the LLM, and print them as JSON.",
	RunE:  runExtractSkills,
}

var (
	extractInput      string
	extractOut        string
	extractAPIKey     string
	extractConfidence bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to input file (.txt, .md, .pdf, .docx)")
	extractSkillsCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file for extracted skills JSON (defaults to stdout)")
	extractSkillsCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	extractSkillsCmd.Flags().BoolVar(&extractConfidence, "confidence", false, "Include a per-skill extraction confidence score (slower)")

	_ = extractSkillsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	text, _, err := ingestion.IngestFromFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to ingest input: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	extractor := extraction.New(client)

	var result any
	var count int
	if extractConfidence {
		enhanced, err := extractor.ExtractSkillsEnhanced(ctx, text)
		if err != nil {
			return fmt.Errorf("skill extraction failed: %w", err)
		}
		result, count = enhanced, len(enhanced.All())
	} else {
		skills, err := extractor.ExtractSkills(ctx, text)
		if err != nil {
			return fmt.Errorf("skill extraction failed: %w", err)
		}
		result, count = skills, len(skills.All())
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	if extractOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(extractOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Extracted %d skills to %s\n", count, extractOut)
	return nil
}
