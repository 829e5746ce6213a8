// Package steps defines the analysis pipeline's step graph and tracks step
// completion, so stages never run before their inputs exist.
package steps

import (
	"fmt"
	"sort"
	"sync"
)

// Step name constants
const (
	IngestResume          = "ingest_resume"
	IngestJob             = "ingest_job"
	AnalyzeResume         = "analyze_resume"
	AnalyzeJob            = "analyze_job"
	BuildGraph            = "build_graph"
	MatchSkills           = "match_skills"
	GapNarrative          = "gap_narrative"
	CompareQualifications = "compare_qualifications"
	WriteArtifacts        = "write_artifacts"
)

// Step category constants
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryMatching  = "matching"
	CategoryOutput    = "output"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	Optional     []string
}

// Registry holds all step definitions
var Registry = map[string]StepDefinition{
	IngestResume: {
		Name:     IngestResume,
		Category: CategoryIngestion,
	},
	IngestJob: {
		Name:     IngestJob,
		Category: CategoryIngestion,
	},
	AnalyzeResume: {
		Name:         AnalyzeResume,
		Category:     CategoryAnalysis,
		Dependencies: []string{IngestResume},
	},
	AnalyzeJob: {
		Name:         AnalyzeJob,
		Category:     CategoryAnalysis,
		Dependencies: []string{IngestJob},
	},
	BuildGraph: {
		Name:     BuildGraph,
		Category: CategoryMatching,
	},
	MatchSkills: {
		Name:         MatchSkills,
		Category:     CategoryMatching,
		Dependencies: []string{AnalyzeResume, AnalyzeJob, BuildGraph},
	},
	GapNarrative: {
		Name:         GapNarrative,
		Category:     CategoryAnalysis,
		Dependencies: []string{AnalyzeResume, AnalyzeJob},
	},
	CompareQualifications: {
		Name:         CompareQualifications,
		Category:     CategoryAnalysis,
		Dependencies: []string{AnalyzeResume, AnalyzeJob},
	},
	WriteArtifacts: {
		Name:         WriteArtifacts,
		Category:     CategoryOutput,
		Dependencies: []string{MatchSkills},
		Optional:     []string{GapNarrative, CompareQualifications},
	},
}

// Tracker records which steps have completed during a run. It is safe for
// concurrent use; the analysis branches run in parallel.
type Tracker struct {
	mu   sync.Mutex
	done map[string]bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{done: make(map[string]bool)}
}

// Complete marks a step as finished.
func (t *Tracker) Complete(name string) error {
	if _, ok := Registry[name]; !ok {
		return fmt.Errorf("unknown step: %s", name)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done[name] = true
	return nil
}

// Completed reports whether a step has finished.
func (t *Tracker) Completed(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done[name]
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every required dependency of a step has
// completed on the tracker.
func ValidateDependencies(t *Tracker, stepName string) error {
	def, ok := Registry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !t.Completed(dep) {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// Available returns the steps whose dependencies are met and that have not yet
// completed, sorted by name.
func Available(t *Tracker) []string {
	var available []string
	for stepName := range Registry {
		if t.Completed(stepName) {
			continue
		}
		if err := ValidateDependencies(t, stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// Blocked returns the steps that cannot run yet, sorted by name.
func Blocked(t *Tracker) []string {
	var blocked []string
	for stepName := range Registry {
		if t.Completed(stepName) {
			continue
		}
		if err := ValidateDependencies(t, stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}
