// Package skillgraph provides an in-memory knowledge graph of skills and their
// relationships, with normalized and fuzzy name lookup.
package skillgraph

import (
	"strings"
	"unicode"
)

// Category classifies what kind of skill a node represents
type Category string

// Category constants cover the taxonomy used by the skill graph
const (
	CategoryProgrammingLanguage Category = "programming_language"
	CategoryFramework           Category = "framework"
	CategoryLibrary             Category = "library"
	CategoryDatabase            Category = "database"
	CategoryTool                Category = "tool"
	CategoryPlatform            Category = "platform"
	CategoryMethodology         Category = "methodology"
	CategoryConcept             Category = "concept"
	CategorySoftSkill           Category = "soft_skill"
)

// Domain identifies an area of practice a skill belongs to
type Domain string

// Domain constants enumerate the areas of practice
const (
	DomainFrontend   Domain = "frontend"
	DomainBackend    Domain = "backend"
	DomainFullstack  Domain = "fullstack"
	DomainDevOps     Domain = "devops"
	DomainData       Domain = "data"
	DomainMobile     Domain = "mobile"
	DomainAIML       Domain = "ai_ml"
	DomainSecurity   Domain = "security"
	DomainDesign     Domain = "design"
	DomainManagement Domain = "management"
)

// Node is a single skill vertex in the knowledge graph
type Node struct {
	ID             string   `json:"id"` // stable slug, unique within a graph
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases,omitempty"`
	NormalizedName string   `json:"normalized_name"` // derived from Name, never set by callers
	Category       Category `json:"category"`
	Domains        []Domain `json:"domains,omitempty"`
	Popularity     int      `json:"popularity,omitempty"` // 0-100
	IsDeprecated   bool     `json:"is_deprecated,omitempty"`
	Versions       []string `json:"versions,omitempty"`
}

// NormalizeName lowercases a skill name and strips whitespace and punctuation,
// so "Node.js", "node js" and "NodeJS" all normalize to "nodejs". '+' and '#'
// are kept as word characters so "C++" and "C#" stay distinct from "C". The
// same function is used for node names, aliases, and query strings, which is
// what makes lookup consistent across the codebase.
func NormalizeName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
