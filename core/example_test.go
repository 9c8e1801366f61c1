package core_test

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

// ExampleGraph builds the 4-cycle 0-1-2-3-0 and inspects it.
func ExampleGraph() {
	g := core.NewGraph(core.WithCapacity(4))
	ids := g.AddVertices(4)
	for i := range ids {
		_ = g.AddEdge(ids[i], ids[(i+1)%len(ids)])
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	nbrs, _ := g.Neighbors(ids[0])
	fmt.Println("neighbors of 0:", nbrs)
	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of 0: [1 3]
}
