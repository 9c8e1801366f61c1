package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldcolor/coloring"
	"github.com/katalvlaran/foldcolor/core"
)

// TestState_TryAssign covers the four refusal conditions and the inverse
// index bookkeeping.
func TestState_TryAssign(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.VertexID{{0, 1}})
	st := coloring.NewState(g, 2)

	// unopened color
	assert.False(t, st.TryAssign(0, 1), "color not opened yet")

	c1 := st.OpenNewColor()
	require.Equal(t, coloring.ColorID(1), c1)
	require.True(t, st.TryAssign(0, c1))

	// duplicate on the same vertex
	assert.False(t, st.TryAssign(0, c1))
	// neighbor conflict
	assert.False(t, st.TryAssign(1, c1), "neighbor holds the color")
	// non-neighbor is fine
	assert.True(t, st.TryAssign(2, c1))

	// quota: fill vertex 0 and refuse a third color
	c2 := st.OpenNewColor()
	require.True(t, st.TryAssign(0, c2))
	assert.True(t, st.IsComplete(0))
	c3 := st.OpenNewColor()
	assert.False(t, st.TryAssign(0, c3), "vertex at quota")

	assert.Equal(t, []core.VertexID{0, 2}, st.ColorClass(c1))
	assert.Equal(t, []coloring.ColorID{c1, c2}, st.Assigned(0))
}

// TestState_Saturations verifies the two metrics the DSATUR variants rank
// by.
func TestState_Saturations(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.VertexID{{0, 1}, {0, 2}})
	st := coloring.NewState(g, 2)

	c1 := st.OpenNewColor()
	require.True(t, st.TryAssign(1, c1))
	c2 := st.OpenNewColor()
	require.True(t, st.TryAssign(2, c2))

	// center sees two distinct neighbor colors, holds none
	assert.Equal(t, 2, st.OuterSaturation(0))
	assert.Equal(t, 2, st.TotalSaturation(0))

	// leaves see nothing (center uncolored), hold one each
	assert.Equal(t, 0, st.OuterSaturation(1))
	assert.Equal(t, 1, st.TotalSaturation(1))

	// both leaves share c3: distinct count on the center stays 3, not 4
	c3 := st.OpenNewColor()
	require.True(t, st.TryAssign(1, c3))
	require.True(t, st.TryAssign(2, c3))
	assert.Equal(t, 3, st.OuterSaturation(0))
}

// TestState_MonotonicColorCount verifies the palette only grows.
func TestState_MonotonicColorCount(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(2)
	st := coloring.NewState(g, 1)

	prev := st.ColorsUsed()
	require.Zero(t, prev)
	for i := 0; i < 5; i++ {
		c := st.OpenNewColor()
		assert.Equal(t, coloring.ColorID(prev+1), c)
		assert.Greater(t, st.ColorsUsed(), prev)
		prev = st.ColorsUsed()
	}
}

// TestState_Snapshot verifies the state detaches from later graph
// mutations.
func TestState_Snapshot(t *testing.T) {
	g := buildGraph(t, 2, [][2]core.VertexID{{0, 1}})
	st := coloring.NewState(g, 1)

	// adding an edge after the snapshot must not affect the run
	v := g.AddVertex()
	require.NoError(t, g.AddEdge(0, v))

	c1 := st.OpenNewColor()
	require.True(t, st.TryAssign(0, c1))
	assert.Len(t, st.Vertices(), 2)
}
