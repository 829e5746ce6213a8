package skillgraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/projectbridge/projectbridge/internal/schemas"
)

// taxonomySchema is the JSON Schema external taxonomy files are validated
// against before graph construction.
const taxonomySchema = "schemas/skill_taxonomy.schema.json"

// TaxonomyFile is the on-disk taxonomy format. Relationships list only one
// direction; inverses are materialized at build time.
type TaxonomyFile struct {
	Skills        []Node         `json:"skills"`
	Relationships []Relationship `json:"relationships"`
}

// LoadError wraps a failure to build a graph from a taxonomy file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadBytes builds a graph from raw taxonomy JSON. All skills are registered
// before any relationship, so edge order in the file does not matter.
func LoadBytes(data []byte) (*Graph, error) {
	var file TaxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "invalid JSON", Cause: err}
	}
	if len(file.Skills) == 0 {
		return nil, &LoadError{Message: "taxonomy has no skills"}
	}

	g := New()
	for i, node := range file.Skills {
		if node.ID == "" || node.Name == "" {
			return nil, &LoadError{Message: fmt.Sprintf("skill at index %d is missing id or name", i)}
		}
		g.AddSkill(node)
	}
	for _, rel := range file.Relationships {
		if err := g.AddRelationship(rel); err != nil {
			return nil, &LoadError{Message: "invalid relationship", Cause: err}
		}
	}
	return g, nil
}

// LoadFile builds a graph from a taxonomy JSON file on disk. The file is
// checked against the taxonomy schema first, so a bad category or relation
// type is reported with its field path instead of surfacing as a half-built
// graph. Installed binaries may run without the schema file, in which case
// the check is skipped.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("reading %s", path), Cause: err}
	}
	if schemaPath := schemas.ResolveSchemaPath(taxonomySchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("%s does not match the taxonomy schema", path), Cause: err}
		}
	}
	return LoadBytes(data)
}
