package skillgraph

// RelationType describes how two skills relate
type RelationType string

// Relationship type constants
const (
	ParentOf      RelationType = "parent_of"
	ChildOf       RelationType = "child_of"
	Requires      RelationType = "requires"
	SimilarTo     RelationType = "similar_to"
	AlternativeTo RelationType = "alternative_to"
	UsedWith      RelationType = "used_with"
	SuccessorOf   RelationType = "successor_of"
	PredecessorOf RelationType = "predecessor_of"
)

// Relationship is a typed, weighted edge between two skill nodes
type Relationship struct {
	SourceID string       `json:"source_id"`
	TargetID string       `json:"target_id"`
	Type     RelationType `json:"type"`
	Strength float64      `json:"strength"` // 0-1 confidence weight
	Context  string       `json:"context,omitempty"`
}

// inverseTypes maps each relationship type to the type of its auto-materialized
// inverse edge. Requires↔UsedWith is an approximation: "React requires
// JavaScript" implies "JavaScript is used with React".
var inverseTypes = map[RelationType]RelationType{
	ParentOf:      ChildOf,
	ChildOf:       ParentOf,
	SuccessorOf:   PredecessorOf,
	PredecessorOf: SuccessorOf,
	SimilarTo:     SimilarTo,
	AlternativeTo: AlternativeTo,
	Requires:      UsedWith,
	UsedWith:      Requires,
}

// Inverse returns the auto-materialized inverse edge for a relationship and
// whether its type participates in inverse pairing.
func (r Relationship) Inverse() (Relationship, bool) {
	inv, ok := inverseTypes[r.Type]
	if !ok {
		return Relationship{}, false
	}
	return Relationship{
		SourceID: r.TargetID,
		TargetID: r.SourceID,
		Type:     inv,
		Strength: r.Strength,
		Context:  r.Context,
	}, true
}
