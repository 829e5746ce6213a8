package skillgraph

import "sort"

// Similarity computes a symmetric, length-normalized Levenshtein similarity
// between two strings: 1 - editDistance/max(len). Comparison is purely
// character-level; inputs should be normalized first when case or punctuation
// must not matter.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row dynamic programming table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// DefaultSimilarityThreshold is the cutoff used by FindSimilarSkills when the
// caller does not supply one.
const DefaultSimilarityThreshold = 0.7

// scoredNode pairs a node with its best similarity score for sorting
type scoredNode struct {
	node  *Node
	score float64
}

// FindSimilarSkills returns all skills whose name or any alias scores at or
// above threshold against the query, sorted by best score descending. Ties
// keep insertion order.
func (g *Graph) FindSimilarSkills(name string, threshold float64) []*Node {
	query := NormalizeName(name)
	if query == "" {
		return nil
	}

	var scored []scoredNode
	for _, id := range g.order {
		node := g.nodes[id]
		best := Similarity(query, node.NormalizedName)
		for _, alias := range node.Aliases {
			if s := Similarity(query, NormalizeName(alias)); s > best {
				best = s
			}
		}
		if best >= threshold {
			scored = append(scored, scoredNode{node: node, score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]*Node, len(scored))
	for i, sn := range scored {
		result[i] = sn.node
	}
	return result
}
