package coloring

import "github.com/katalvlaran/foldcolor/core"

// connectedOrder computes the connected sequential ordering: a
// breadth-first traversal rooted at the lowest-numbered unvisited vertex
// of each component, expanding neighbors in ascending id order. Within a
// component every vertex (after the root) is adjacent to an
// already-visited vertex, which is the property the CS engine needs;
// components themselves are taken in ascending-root order.
// Complexity: O(V + E).
func connectedOrder(st *State) []core.VertexID {
	order := make([]core.VertexID, 0, len(st.live))
	visited := make(map[core.VertexID]bool, len(st.live))
	queue := make([]core.VertexID, 0, len(st.live))

	for _, root := range st.live {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, nbr := range st.adj[v] {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
	}

	return order
}
