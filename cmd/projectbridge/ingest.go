package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/projectbridge/projectbridge/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a document from a file or URL",
	Long:  "Ingest a resume or job posting from a file or URL, clean the content, and write the cleaned text with metadata.",
	RunE:  runIngest,
}

var (
	ingestFile       string
	ingestURL        string
	ingestOut        string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to input file (.txt, .md, .pdf, .docx)")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the document from")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if ingestFile != "" && ingestURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL, ingestion.URLOptions{
			UseBrowser: ingestUseBrowser,
			Verbose:    ingestVerbose,
		})
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := os.MkdirAll(ingestOut, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(ingestOut, "cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(ingestOut, "metadata.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested document (%d words)\n", metadata.WordCount)
	fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", cleanedPath)
	fmt.Fprintf(os.Stdout, "Metadata: %s\n", metaPath)

	return nil
}
