// Package core: read-only snapshot views over the Graph.
//
// Coloring engines treat the Graph as immutable input and query adjacency
// in tight loops; AdjacencyView lets them pay the locking and sorting cost
// once up front instead of per lookup.

package core

import "sort"

// AdjacencyView returns a point-in-time snapshot of the adjacency
// structure, indexed by VertexID: view[v] holds v's neighbors sorted
// ascending, and is nil for retired ids. The snapshot is fully detached
// from the Graph; later mutations are not reflected.
// Complexity: O(V + E·log d_max).
func (g *Graph) AdjacencyView() [][]VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	view := make([][]VertexID, len(g.adjacency))
	for i, set := range g.adjacency {
		if !g.alive[i] {
			continue
		}
		nbrs := make([]VertexID, 0, len(set))
		for nbr := range set {
			nbrs = append(nbrs, nbr)
		}
		sort.Slice(nbrs, func(a, b int) bool { return nbrs[a] < nbrs[b] })
		view[i] = nbrs
	}

	return view
}
