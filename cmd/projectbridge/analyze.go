package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projectbridge/projectbridge/internal/config"
	"github.com/projectbridge/projectbridge/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full skill gap analysis end-to-end",
	Long: `Orchestrates the entire analysis: ingestion -> skill extraction -> graph matching -> gap report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeTaxonomy   string
	analyzeOutDir     string
	analyzeAPIKey     string
	analyzeThreshold  float64
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.txt, .md, .pdf, .docx)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVar(&analyzeTaxonomy, "taxonomy", "", "Path to a skill taxonomy JSON file (optional, defaults to the built-in taxonomy)")
	analyzeCommand.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Output directory for analysis artifacts (optional)")
	analyzeCommand.Flags().Float64Var(&analyzeThreshold, "similarity-threshold", 0, "Fuzzy match cutoff for near-miss reporting, 0-1")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Merge CLI flags over config file values. Only flags that were
	// explicitly set participate; everything else falls back to the file.
	flagCfg := config.Config{}
	if cmd.Flags().Changed("resume") {
		flagCfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		flagCfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		flagCfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("taxonomy") {
		flagCfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("out") {
		flagCfg.OutDir = analyzeOutDir
	}
	if cmd.Flags().Changed("similarity-threshold") {
		flagCfg.SimilarityThreshold = analyzeThreshold
	}
	if cmd.Flags().Changed("api-key") {
		flagCfg.APIKey = analyzeAPIKey
	}
	merged := flagCfg.MergeWithDefaults(cfg)

	// Bools are left out of the merge; the file value holds unless the flag
	// was given.
	merged.UseBrowser = cfg.UseBrowser
	merged.Verbose = cfg.Verbose
	if cmd.Flags().Changed("use-browser") {
		merged.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		merged.Verbose = analyzeVerbose
	}
	cfg = merged

	// Step 3: Validate required fields after merging
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 4: API key handling
	apiKey := cfg.APIKeyFromEnv()
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	opts := pipeline.RunOptions{
		ResumePath:          cfg.Resume,
		JobPath:             cfg.Job,
		JobURL:              cfg.JobURL,
		TaxonomyPath:        cfg.Taxonomy,
		OutDir:              cfg.OutDir,
		APIKey:              apiKey,
		UseBrowser:          cfg.UseBrowser,
		Verbose:             cfg.Verbose,
		SimilarityThreshold: cfg.SimilarityThreshold,
	}

	result, err := pipeline.RunPipeline(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nRun %s complete: %d%% match, %d matched, %d missing.\n",
		result.RunID, result.Gap.MatchPercentage, len(result.Gap.MatchedSkills), len(result.Gap.MissingSkills))
	return nil
}
