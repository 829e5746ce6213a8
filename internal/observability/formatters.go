// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/projectbridge/projectbridge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to max characters, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// writeSkillCategory appends one "Label: a, b, c" line when the category is
// non-empty.
func writeSkillCategory(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	shown := skills
	suffix := ""
	if len(skills) > maxItemsToShow {
		shown = skills[:maxItemsToShow]
		suffix = fmt.Sprintf(" (+%d)", len(skills)-maxItemsToShow)
	}
	// The suffix must survive printBox's line budget, so it counts against
	// the truncation width.
	joined := truncate(strings.Join(shown, ", "), 38-len(suffix))
	sb.WriteString(fmt.Sprintf("%-14s %s%s\n", label+":", joined, suffix))
}

// PrintExtractedSkills outputs the categorized skills under a custom title,
// so the same formatter serves both resume and job output.
func (p *Printer) PrintExtractedSkills(title string, skills *types.ExtractedSkills) {
	if skills == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills: %d\n\n", len(skills.All())))

	writeSkillCategory(&sb, "Technical", skills.Technical)
	writeSkillCategory(&sb, "Languages", skills.Languages)
	writeSkillCategory(&sb, "Frameworks", skills.Frameworks)
	writeSkillCategory(&sb, "Databases", skills.Databases)
	writeSkillCategory(&sb, "Tools", skills.Tools)
	writeSkillCategory(&sb, "Platforms", skills.Platforms)
	writeSkillCategory(&sb, "Methodologies", skills.Methodologies)
	writeSkillCategory(&sb, "Soft", skills.Soft)
	writeSkillCategory(&sb, "Other", skills.Other)
	writeSkillCategory(&sb, "AI Frameworks", skills.AIFrameworks)
	writeSkillCategory(&sb, "AI Concepts", skills.AIConcepts)

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeAnalysis outputs a human-readable summary of the resume analysis.
func (p *Printer) PrintResumeAnalysis(result *types.ResumeAnalysisResult) {
	if result == nil {
		return
	}

	p.PrintExtractedSkills("RESUME SKILLS", result.Skills)

	var sb strings.Builder
	if len(result.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(result.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := result.Experience[i]
			line := exp.Title
			if exp.Company != "" {
				line += " at " + exp.Company
			}
			if exp.Duration != "" {
				line += " (" + exp.Duration + ")"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(line, 48)))
		}
		if len(result.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Qualifications) > 0 {
		sb.WriteString("Qualifications:\n")
		count := min(len(result.Qualifications), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.Qualifications[i], 48)))
		}
		if len(result.Qualifications) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Qualifications)-3))
		}
	}

	if sb.Len() > 0 {
		p.printBox("RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintJobAnalysis outputs a human-readable summary of the job analysis.
func (p *Printer) PrintJobAnalysis(result *types.JobAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", result.RoleTitle))
	if result.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", result.Company))
	}
	sb.WriteString("\n")

	if result.Qualifications != nil && len(result.Qualifications.Required) > 0 {
		sb.WriteString("Required Qualifications:\n")
		count := min(len(result.Qualifications.Required), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.Qualifications.Required[i], 48)))
		}
		if len(result.Qualifications.Required) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Qualifications.Required)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if result.Qualifications != nil && len(result.Qualifications.Preferred) > 0 {
		sb.WriteString("Preferred:\n")
		count := min(len(result.Qualifications.Preferred), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.Qualifications.Preferred[i], 48)))
		}
		if len(result.Qualifications.Preferred) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Qualifications.Preferred)-3))
		}
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintExtractedSkills("JOB SKILLS", result.Skills)
}

// PrintGapAnalysis outputs the final gap analysis with match indicators.
func (p *Printer) PrintGapAnalysis(result *types.SkillGapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %d%%\n\n", result.MatchPercentage))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.MatchedSkills)))
		count := min(len(result.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			ms := result.MatchedSkills[i]
			line := "✓ " + ms.Name
			if ms.Relevance != "" {
				line += " (" + ms.Relevance + ")"
			}
			sb.WriteString(fmt.Sprintf("  %s\n", truncate(line, 48)))
		}
		if len(result.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.MissingSkills)))
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			ms := result.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", truncate(fmt.Sprintf("%s [%s]", ms.Name, ms.Priority), 46)))
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(fmt.Sprintf("[%s] %s", rec.Type, rec.Description), 46)))
		}
		if len(result.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-3))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNearMisses outputs missing skills that sit close to something the
// candidate already has, which usually means a naming mismatch rather than a
// real gap.
func (p *Printer) PrintNearMisses(nearMisses map[string][]string) {
	if len(nearMisses) == 0 {
		return
	}

	var sb strings.Builder
	for missing, similar := range nearMisses {
		sb.WriteString(fmt.Sprintf("%s ≈ %s\n", missing, truncate(strings.Join(similar, ", "), 40)))
	}

	p.printBox("POSSIBLE NAME MISMATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
