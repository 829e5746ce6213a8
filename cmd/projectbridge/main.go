// Package main provides the entry point for the ProjectBridge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "projectbridge",
	Short: "Skill gap analysis between resumes and job postings",
	Long:  "ProjectBridge analyzes a resume against a job posting: it extracts skills with an LLM, matches them through a skill knowledge graph, and reports the gap with learning recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
