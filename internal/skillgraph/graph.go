package skillgraph

import "fmt"

// UnknownNodeError is returned when a relationship references a skill ID that
// has not been registered in the graph.
type UnknownNodeError struct {
	ID   string
	Side string // "source" or "target"
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("relationship %s references unknown skill %q", e.Side, e.ID)
}

// Graph is an in-memory skill knowledge graph. It follows a build-then-query
// discipline: AddSkill/AddRelationship run during construction, after which the
// graph is treated as read-only by all lookup methods. It is not safe for
// concurrent mutation.
type Graph struct {
	nodes    map[string]*Node
	order    []string // node IDs in insertion order, for deterministic lookup
	edges    []Relationship
	outgoing map[string][]int // node ID -> indices into edges
}

// New creates an empty skill graph
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
	}
}

// AddSkill inserts a node, overwriting any existing node with the same ID.
// NormalizedName is always derived here; any caller-supplied value is ignored.
func (g *Graph) AddSkill(node Node) {
	node.NormalizedName = NormalizeName(node.Name)
	if _, exists := g.nodes[node.ID]; !exists {
		g.order = append(g.order, node.ID)
	}
	g.nodes[node.ID] = &node
}

// AddRelationship appends an edge between two registered skills. Both
// endpoints must exist; otherwise an UnknownNodeError is returned and no edge
// is added. When the relationship type has an inverse, the inverse edge is
// materialized automatically as a second edge.
func (g *Graph) AddRelationship(rel Relationship) error {
	if _, ok := g.nodes[rel.SourceID]; !ok {
		return &UnknownNodeError{ID: rel.SourceID, Side: "source"}
	}
	if _, ok := g.nodes[rel.TargetID]; !ok {
		return &UnknownNodeError{ID: rel.TargetID, Side: "target"}
	}

	g.appendEdge(rel)
	if inv, ok := rel.Inverse(); ok {
		g.appendEdge(inv)
	}
	return nil
}

func (g *Graph) appendEdge(rel Relationship) {
	g.edges = append(g.edges, rel)
	g.outgoing[rel.SourceID] = append(g.outgoing[rel.SourceID], len(g.edges)-1)
}

// Skill returns the node registered under id, or nil.
func (g *Graph) Skill(id string) *Node {
	return g.nodes[id]
}

// Len returns the number of registered skills.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of stored edges, counting materialized inverses.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// SkillNames returns every registered skill name in insertion order. Text
// mining uses this as its reference vocabulary.
func (g *Graph) SkillNames() []string {
	names := make([]string, 0, len(g.order))
	for _, id := range g.order {
		names = append(names, g.nodes[id].Name)
	}
	return names
}

// FindSkillByName looks up a skill by normalized name, first against node
// names, then against aliases. Nodes are scanned in insertion order and the
// first match wins. Returns nil when nothing matches.
func (g *Graph) FindSkillByName(name string) *Node {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil
	}

	for _, id := range g.order {
		if g.nodes[id].NormalizedName == normalized {
			return g.nodes[id]
		}
	}
	for _, id := range g.order {
		for _, alias := range g.nodes[id].Aliases {
			if NormalizeName(alias) == normalized {
				return g.nodes[id]
			}
		}
	}
	return nil
}

// RelatedSkills returns the target nodes of outgoing edges from id, optionally
// filtered to a subset of relationship types. Passing no types returns all
// related skills.
func (g *Graph) RelatedSkills(id string, relTypes ...RelationType) []*Node {
	var related []*Node
	for _, idx := range g.outgoing[id] {
		edge := g.edges[idx]
		if len(relTypes) > 0 && !containsType(relTypes, edge.Type) {
			continue
		}
		if node := g.nodes[edge.TargetID]; node != nil {
			related = append(related, node)
		}
	}
	return related
}

// IsRelatedTo reports whether an edge from id1 to id2 exists, optionally
// restricted to a subset of relationship types.
func (g *Graph) IsRelatedTo(id1, id2 string, relTypes ...RelationType) bool {
	for _, idx := range g.outgoing[id1] {
		edge := g.edges[idx]
		if edge.TargetID != id2 {
			continue
		}
		if len(relTypes) == 0 || containsType(relTypes, edge.Type) {
			return true
		}
	}
	return false
}

// Hierarchy returns the node itself plus its one-hop parents and children.
func (g *Graph) Hierarchy(id string) []*Node {
	node := g.nodes[id]
	if node == nil {
		return nil
	}
	hierarchy := []*Node{node}
	hierarchy = append(hierarchy, g.RelatedSkills(id, ChildOf)...)
	hierarchy = append(hierarchy, g.RelatedSkills(id, ParentOf)...)
	return hierarchy
}

func containsType(relTypes []RelationType, t RelationType) bool {
	for _, rt := range relTypes {
		if rt == t {
			return true
		}
	}
	return false
}
