// Package pipeline provides the high-level orchestration for the skill gap
// analysis: ingestion, LLM analysis, graph matching, and artifact output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/projectbridge/projectbridge/internal/extraction"
	"github.com/projectbridge/projectbridge/internal/ingestion"
	"github.com/projectbridge/projectbridge/internal/llm"
	"github.com/projectbridge/projectbridge/internal/matcher"
	"github.com/projectbridge/projectbridge/internal/normalize"
	"github.com/projectbridge/projectbridge/internal/observability"
	"github.com/projectbridge/projectbridge/internal/pipeline/steps"
	"github.com/projectbridge/projectbridge/internal/schemas"
	"github.com/projectbridge/projectbridge/internal/skillgraph"
	"github.com/projectbridge/projectbridge/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath          string
	JobPath             string
	JobURL              string
	TaxonomyPath        string
	OutDir              string
	APIKey              string
	UseBrowser          bool
	Verbose             bool
	SimilarityThreshold float64
	Client              llm.Client // optional; built from APIKey when nil
	OnProgress          ProgressCallback
}

// RunResult holds every artifact produced by a pipeline run
type RunResult struct {
	RunID          uuid.UUID
	Resume         *types.ResumeAnalysisResult
	Job            *types.JobAnalysisResult
	Gap            *types.SkillGapAnalysisResult
	Qualifications *extraction.QualificationComparison
	ArtifactDir    string
}

// runMetadata is the run.json artifact describing a completed run
type runMetadata struct {
	RunID       string              `json:"run_id"`
	StartedAt   string              `json:"started_at"`
	CompletedAt string              `json:"completed_at"`
	Resume      *ingestion.Metadata `json:"resume"`
	Job         *ingestion.Metadata `json:"job"`
}

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixResume logPrefix = "[Resume] "
	prefixJob    logPrefix = "[Job]    "
)

// defaultSimilarityThreshold is the near-miss reporting cutoff used when the
// caller leaves SimilarityThreshold unset.
const defaultSimilarityThreshold = 0.8

type runner struct {
	opts    RunOptions
	runID   uuid.UUID
	tracker *steps.Tracker
	printer *observability.Printer
}

// emit calls the progress callback if configured
func (r *runner) emit(step, message string, content any) {
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.Registry[step].Category,
			Message:  message,
			RunID:    r.runID.String(),
			Content:  content,
		})
	}
}

// complete validates a step's dependencies were respected and marks it done
func (r *runner) complete(step, message string, content any) error {
	if err := steps.ValidateDependencies(r.tracker, step); err != nil {
		return err
	}
	if err := r.tracker.Complete(step); err != nil {
		return err
	}
	r.emit(step, message, content)
	return nil
}

// RunPipeline orchestrates the full skill gap analysis pipeline
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	r := &runner{
		opts:    opts,
		runID:   uuid.New(),
		tracker: steps.NewTracker(),
		printer: observability.NewPrinter(os.Stdout),
	}
	startedAt := time.Now().UTC()

	client := opts.Client
	if client == nil {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultGeminiConfig(), opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("creating LLM client failed: %w", err)
		}
		defer client.Close()
	}
	extractor := extraction.New(client)

	// Step 1: Ingest resume
	fmt.Printf("Step 1/6: Ingesting resume from %s...\n", opts.ResumePath)
	resumeText, resumeMeta, err := ingestion.IngestFromFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("resume ingestion failed: %w", err)
	}
	if err := r.complete(steps.IngestResume,
		fmt.Sprintf("Ingested resume (%d words)", resumeMeta.WordCount), nil); err != nil {
		return nil, err
	}

	// Step 2: Ingest job posting (from URL or file)
	var jobText string
	var jobMeta *ingestion.Metadata
	if opts.JobURL != "" {
		fmt.Printf("Step 2/6: Ingesting job posting from URL: %s...\n", opts.JobURL)
		jobText, jobMeta, err = ingestion.IngestFromURL(ctx, opts.JobURL, ingestion.URLOptions{
			UseBrowser: opts.UseBrowser,
			Verbose:    opts.Verbose,
		})
	} else {
		fmt.Printf("Step 2/6: Ingesting job posting from file: %s...\n", opts.JobPath)
		jobText, jobMeta, err = ingestion.IngestFromFile(opts.JobPath)
	}
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}
	if err := r.complete(steps.IngestJob,
		fmt.Sprintf("Ingested job posting (%d words)", jobMeta.WordCount), nil); err != nil {
		return nil, err
	}

	// =========================================================================
	// PARALLEL EXECUTION: Resume Analysis + Job Analysis
	// =========================================================================
	fmt.Printf("Step 3/6: Analyzing resume and job posting in parallel...\n")

	g, gCtx := errgroup.WithContext(ctx)

	var resumeAnalysis *types.ResumeAnalysisResult
	var jobAnalysis *types.JobAnalysisResult

	g.Go(func() error {
		result, err := extractor.AnalyzeResume(gCtx, resumeText)
		if err != nil {
			return fmt.Errorf("resume analysis failed: %w", err)
		}
		resumeAnalysis = result
		fmt.Printf("%sExtracted %d skills from resume\n", prefixResume, len(result.Skills.All()))
		return r.complete(steps.AnalyzeResume,
			fmt.Sprintf("Analyzed resume: %d skills, %d positions", len(result.Skills.All()), len(result.Experience)),
			result)
	})

	g.Go(func() error {
		result, err := extractor.AnalyzeJob(gCtx, jobText)
		if err != nil {
			return fmt.Errorf("job analysis failed: %w", err)
		}
		jobAnalysis = result
		fmt.Printf("%sExtracted %d skills from job posting\n", prefixJob, len(result.Skills.All()))
		return r.complete(steps.AnalyzeJob,
			fmt.Sprintf("Analyzed job posting: %s", result.RoleTitle),
			result)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		r.printer.PrintResumeAnalysis(resumeAnalysis)
		r.printer.PrintJobAnalysis(jobAnalysis)
	}

	// Step 4: Build the skill knowledge graph
	fmt.Printf("Step 4/6: Building skill knowledge graph...\n")
	graph, err := loadGraph(opts.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("building skill graph failed: %w", err)
	}
	if err := r.complete(steps.BuildGraph,
		fmt.Sprintf("Built skill graph: %d skills, %d relationships", graph.Len(), graph.EdgeCount()), nil); err != nil {
		return nil, err
	}

	// Step 5: Match skills and assemble the gap analysis
	fmt.Printf("Step 5/6: Matching skills against requirements...\n")
	have := resumeAnalysis.Skills.All()
	need := jobAnalysis.Skills.All()
	gap := matcher.New(graph).AnalyzeGap(have, need)
	if err := r.complete(steps.MatchSkills,
		fmt.Sprintf("Matched skills: %d%% match, %d missing", gap.MatchPercentage, len(gap.MissingSkills)),
		gap); err != nil {
		return nil, err
	}

	// Narrative pass: the model writes recommendations and prose, never the
	// numbers. A failure here degrades output quality, not correctness.
	if narrative, err := extractor.GapAnalysis(ctx, resumeAnalysis.Skills, jobAnalysis.Skills); err != nil {
		fmt.Printf("Warning: gap narrative generation failed: %v\n", err)
	} else {
		mergeNarrative(gap, narrative, graph.SkillNames())
		_ = r.complete(steps.GapNarrative, "Generated gap narrative", nil)
	}

	var qualComparison *extraction.QualificationComparison
	if jobAnalysis.Qualifications != nil {
		qualComparison, err = extractor.CompareQualifications(ctx, resumeAnalysis.Experience, jobAnalysis.Qualifications.Required)
		if err != nil {
			fmt.Printf("Warning: qualification comparison failed: %v\n", err)
		} else {
			gap.MissingQualifications = qualComparison.Unmet
			_ = r.complete(steps.CompareQualifications,
				fmt.Sprintf("Compared qualifications: %d met, %d unmet", len(qualComparison.Met), len(qualComparison.Unmet)),
				qualComparison)
		}
	}

	if opts.Verbose {
		r.printer.PrintGapAnalysis(gap)
		r.printer.PrintNearMisses(nearMisses(resumeAnalysis.Skills.All(), gap, opts.SimilarityThreshold))
	}

	// Step 6: Write artifacts
	result := &RunResult{
		RunID:          r.runID,
		Resume:         resumeAnalysis,
		Job:            jobAnalysis,
		Gap:            gap,
		Qualifications: qualComparison,
	}

	if opts.OutDir != "" {
		fmt.Printf("Step 6/6: Writing artifacts to %s...\n", opts.OutDir)
		meta := &runMetadata{
			RunID:       r.runID.String(),
			StartedAt:   startedAt.Format(time.RFC3339),
			CompletedAt: time.Now().UTC().Format(time.RFC3339),
			Resume:      resumeMeta,
			Job:         jobMeta,
		}
		if err := writeArtifacts(opts.OutDir, result, meta); err != nil {
			return nil, fmt.Errorf("writing artifacts failed: %w", err)
		}
		result.ArtifactDir = opts.OutDir
		if err := r.complete(steps.WriteArtifacts,
			fmt.Sprintf("Wrote artifacts to %s", opts.OutDir), nil); err != nil {
			return nil, err
		}
	} else {
		fmt.Printf("Step 6/6: No output directory configured, skipping artifacts.\n")
	}

	fmt.Printf("Done! Match: %d%%, missing skills: %d.\n", gap.MatchPercentage, len(gap.MissingSkills))
	return result, nil
}

// loadGraph builds the skill graph from a taxonomy file, or the built-in
// taxonomy when no path is given.
func loadGraph(taxonomyPath string) (*skillgraph.Graph, error) {
	if taxonomyPath == "" {
		return skillgraph.NewDefault(), nil
	}
	return skillgraph.LoadFile(taxonomyPath)
}

// mergeNarrative folds the model's prose into the graph-computed gap analysis.
// Computed fields (percentage, matched, missing) always win; the model only
// contributes recommendations, missing experience, and the summary. Gaps the
// summary names only in prose are mined against the graph vocabulary and
// appended as low-priority missing skills, deduplicated against the computed
// entries.
func mergeNarrative(gap, narrative *types.SkillGapAnalysisResult, knownSkills []string) {
	if narrative == nil {
		return
	}
	if len(narrative.Recommendations) > 0 {
		gap.Recommendations = narrative.Recommendations
	}
	if len(narrative.MissingExperience) > 0 {
		gap.MissingExperience = narrative.MissingExperience
	}
	if narrative.Summary != "" {
		gap.Summary = narrative.Summary

		existing := make([]string, 0, len(gap.MissingSkills))
		for _, skill := range gap.MissingSkills {
			existing = append(existing, skill.Name)
		}
		mined := normalize.MineSkillMentions(narrative.Summary, knownSkills)
		for _, name := range normalize.MergeSkillNames(existing, mined)[len(existing):] {
			gap.MissingSkills = append(gap.MissingSkills, types.MissingSkill{
				Name:     name,
				Priority: "Low",
				Context:  "Mentioned in the analysis summary",
			})
		}
	}
}

// nearMisses maps each missing skill to candidate skills that sit within the
// similarity threshold of it. A non-empty entry usually means the resume names
// a skill the graph could not resolve, such as a typo or uncommon spelling.
func nearMisses(have []string, gap *types.SkillGapAnalysisResult, threshold float64) map[string][]string {
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}

	misses := make(map[string][]string)
	for _, missing := range gap.MissingSkills {
		missKey := skillgraph.NormalizeName(missing.Name)
		for _, haveName := range have {
			haveKey := skillgraph.NormalizeName(haveName)
			if haveKey == "" || haveKey == missKey {
				continue
			}
			if skillgraph.Similarity(missKey, haveKey) >= threshold {
				misses[missing.Name] = append(misses[missing.Name], haveName)
			}
		}
	}
	return misses
}

// artifactFiles maps output file names to the schema each must satisfy.
var artifactFiles = map[string]string{
	"resume_analysis.json":    "schemas/resume_analysis.schema.json",
	"job_analysis.json":       "schemas/job_analysis.schema.json",
	"skill_gap_analysis.json": "schemas/skill_gap_analysis.schema.json",
}

// writeArtifacts marshals the run's results, validates each against its JSON
// Schema when the schema is resolvable, and writes them under outDir.
func writeArtifacts(outDir string, result *RunResult, meta *runMetadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	artifacts := map[string]any{
		"resume_analysis.json":    result.Resume,
		"job_analysis.json":       result.Job,
		"skill_gap_analysis.json": result.Gap,
		"run.json":                meta,
	}
	if result.Qualifications != nil {
		artifacts["qualification_comparison.json"] = result.Qualifications
	}

	for name, artifact := range artifacts {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", name, err)
		}

		// Schemas live in the repo; installed binaries may run without them,
		// in which case validation is skipped.
		if schemaRel, ok := artifactFiles[name]; ok {
			if schemaPath := schemas.ResolveSchemaPath(schemaRel); schemaPath != "" {
				if err := schemas.ValidateBytes(schemaPath, data); err != nil {
					return fmt.Errorf("artifact %s failed schema validation: %w", name, err)
				}
			}
		}

		if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	return nil
}
