package skillgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault_Builds(t *testing.T) {
	g := NewDefault()

	assert.Equal(t, len(seedNodes), g.Len())
	// Every listed edge plus its materialized inverse.
	assert.Equal(t, 2*len(seedRelationships), g.EdgeCount())
}

func TestNewDefault_SeedEdgesResolve(t *testing.T) {
	g := NewDefault()
	for _, rel := range seedRelationships {
		require.NotNil(t, g.Skill(rel.SourceID), "seed edge source %s", rel.SourceID)
		require.NotNil(t, g.Skill(rel.TargetID), "seed edge target %s", rel.TargetID)
	}
}

func TestNewDefault_Lookups(t *testing.T) {
	g := NewDefault()

	react := g.FindSkillByName("ReactJS")
	require.NotNil(t, react)
	assert.Equal(t, "react", react.ID)

	// React requires JavaScript; the UsedWith inverse points back.
	assert.True(t, g.IsRelatedTo("react", "javascript", Requires))
	assert.True(t, g.IsRelatedTo("javascript", "react", UsedWith))
}
