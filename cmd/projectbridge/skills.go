package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/projectbridge/projectbridge/internal/skillgraph"
)

var skillsCmd = &cobra.Command{
	Use:   "skills <name>",
	Short: "Look up a skill in the knowledge graph",
	Long:  "Resolve a skill name through the knowledge graph and show its aliases, related skills, and hierarchy. Unresolvable names fall back to fuzzy suggestions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkills,
}

var (
	skillsTaxonomy  string
	skillsThreshold float64
)

func init() {
	skillsCmd.Flags().StringVar(&skillsTaxonomy, "taxonomy", "", "Path to a skill taxonomy JSON file (optional, defaults to the built-in taxonomy)")
	skillsCmd.Flags().Float64Var(&skillsThreshold, "similarity-threshold", 0.7, "Fuzzy match cutoff for suggestions, 0-1")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, args []string) error {
	name := args[0]

	var graph *skillgraph.Graph
	var err error
	if skillsTaxonomy != "" {
		graph, err = skillgraph.LoadFile(skillsTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	} else {
		graph = skillgraph.NewDefault()
	}

	node := graph.FindSkillByName(name)
	if node == nil {
		similar := graph.FindSimilarSkills(name, skillsThreshold)
		if len(similar) == 0 {
			return fmt.Errorf("unknown skill: %s", name)
		}
		fmt.Fprintf(os.Stdout, "Unknown skill %q. Did you mean:\n", name)
		for _, s := range similar {
			fmt.Fprintf(os.Stdout, "  %s\n", s.Name)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", node.Name)
	fmt.Fprintf(w, "ID:\t%s\n", node.ID)
	fmt.Fprintf(w, "Category:\t%s\n", node.Category)
	if len(node.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases:\t%v\n", node.Aliases)
	}
	if node.Popularity > 0 {
		fmt.Fprintf(w, "Popularity:\t%d\n", node.Popularity)
	}

	for _, relType := range []skillgraph.RelationType{
		skillgraph.Requires, skillgraph.UsedWith,
		skillgraph.SimilarTo, skillgraph.AlternativeTo,
	} {
		related := graph.RelatedSkills(node.ID, relType)
		if len(related) == 0 {
			continue
		}
		names := make([]string, 0, len(related))
		for _, r := range related {
			names = append(names, r.Name)
		}
		fmt.Fprintf(w, "%s:\t%v\n", relType, names)
	}

	hierarchy := graph.Hierarchy(node.ID)
	if len(hierarchy) > 1 {
		names := make([]string, 0, len(hierarchy))
		for _, h := range hierarchy {
			if h.ID != node.ID {
				names = append(names, h.Name)
			}
		}
		fmt.Fprintf(w, "Hierarchy:\t%v\n", names)
	}

	return w.Flush()
}
