package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldcolor/coloring"
	"github.com/katalvlaran/foldcolor/core"
)

// TestDSATUR_CompleteBipartite verifies the optimal 2-coloring of K(3,3)
// under both saturation policies.
func TestDSATUR_CompleteBipartite(t *testing.T) {
	for _, policy := range []coloring.SaturationPolicy{
		coloring.SaturationTotal,
		coloring.SaturationOuter,
	} {
		g := completeBipartite33(t)
		res, err := coloring.DSATUR(g, 1, coloring.WithSaturationPolicy(policy))
		require.NoError(t, err)
		requireProperFoldColoring(t, g, res, 1)
		assert.Equal(t, 2, res.ColorsUsed, "policy %d", policy)
	}
}

// TestDSATUR_PolicyValidation verifies unknown policies are rejected.
func TestDSATUR_PolicyValidation(t *testing.T) {
	g := triangle(t)
	_, err := coloring.DSATUR(g, 1, coloring.WithSaturationPolicy(coloring.SaturationPolicy(42)))
	assert.ErrorIs(t, err, coloring.ErrOptionViolation)
}

// TestDSATUR_PoliciesBothProper verifies both policies stay proper on a
// denser multi-fold instance (they may differ in palette size, not in
// legality).
func TestDSATUR_PoliciesBothProper(t *testing.T) {
	g := completeBipartite33(t)
	for _, folds := range []int{2, 5} {
		total, err := coloring.DSATUR(g, folds, coloring.WithSaturationPolicy(coloring.SaturationTotal))
		require.NoError(t, err)
		requireProperFoldColoring(t, g, total, folds)

		outer, err := coloring.DSATUR(g, folds, coloring.WithSaturationPolicy(coloring.SaturationOuter))
		require.NoError(t, err)
		requireProperFoldColoring(t, g, outer, folds)

		// K(3,3) is bipartite: 2·folds colors suffice and DSATUR finds it
		assert.Equal(t, 2*folds, total.ColorsUsed)
		assert.Equal(t, 2*folds, outer.ColorsUsed)
	}
}

// TestDSATUR_OpensHighestDegreeFirst verifies the classic opening move:
// with all saturations zero, the star center wins on degree and receives
// color 1; the leaves then share color 2.
func TestDSATUR_OpensHighestDegreeFirst(t *testing.T) {
	g := buildGraph(t, 5, [][2]core.VertexID{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	res, err := coloring.DSATUR(g, 1)
	require.NoError(t, err)
	requireProperFoldColoring(t, g, res, 1)
	assert.Equal(t, 2, res.ColorsUsed)
	assert.Equal(t, []coloring.ColorID{1}, res.Coloring[0])
}
