package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldcolor/coloring"
	"github.com/katalvlaran/foldcolor/core"
)

// engineFunc lets property tests range over all three engines.
type engineFunc func(*core.Graph, int, ...coloring.Option) (*coloring.Result, error)

// engines names every entry point once, in a stable order.
var engines = []struct {
	name string
	run  engineFunc
}{
	{"AMIS", coloring.AMIS},
	{"DSATUR", coloring.DSATUR},
	{"ConnectedSequential", coloring.ConnectedSequential},
}

// buildGraph constructs a graph with n vertices and the given edge list.
func buildGraph(t *testing.T, n int, edges [][2]core.VertexID) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	g.AddVertices(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// triangle is K3.
func triangle(t *testing.T) *core.Graph {
	return buildGraph(t, 3, [][2]core.VertexID{{0, 1}, {1, 2}, {0, 2}})
}

// completeBipartite33 is K(3,3): {0,1,2} × {3,4,5}.
func completeBipartite33(t *testing.T) *core.Graph {
	var edges [][2]core.VertexID
	for u := core.VertexID(0); u < 3; u++ {
		for v := core.VertexID(3); v < 6; v++ {
			edges = append(edges, [2]core.VertexID{u, v})
		}
	}

	return buildGraph(t, 6, edges)
}

// oddCycle is C_n for odd n, the original experiment family.
func oddCycle(t *testing.T, n int) *core.Graph {
	edges := make([][2]core.VertexID, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]core.VertexID{core.VertexID(i), core.VertexID((i + 1) % n)})
	}

	return buildGraph(t, n, edges)
}

// requireProperFoldColoring asserts the three run invariants: completeness
// (every vertex at quota with distinct colors), legality (no edge shares a
// color), and color-class independence.
func requireProperFoldColoring(t *testing.T, g *core.Graph, res *coloring.Result, folds int) {
	t.Helper()

	for _, v := range g.Vertices() {
		colors := res.Coloring[v]
		require.Len(t, colors, folds, "vertex %d below quota", v)
		seen := make(map[coloring.ColorID]bool, folds)
		for _, c := range colors {
			require.False(t, seen[c], "vertex %d holds color %d twice", v, c)
			require.GreaterOrEqual(t, int(c), 1)
			require.LessOrEqual(t, int(c), res.ColorsUsed)
			seen[c] = true
		}
		nbrs, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, nbr := range nbrs {
			for _, c := range res.Coloring[nbr] {
				require.False(t, seen[c], "edge (%d,%d) shares color %d", v, nbr, c)
			}
		}
	}

	// inverse index: every color class is an independent set
	st := res.State()
	for c := 1; c <= res.ColorsUsed; c++ {
		class := st.ColorClass(coloring.ColorID(c))
		require.NotEmpty(t, class, "color %d opened but never used", c)
		for i, u := range class {
			for _, v := range class[i+1:] {
				require.False(t, g.HasEdge(u, v),
					"class %d contains adjacent vertices %d,%d", c, u, v)
			}
		}
	}
}
