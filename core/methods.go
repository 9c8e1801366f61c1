// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. We leverage separate
// RWMutex locks for vertex liveness (muVert) and adjacency (muAdj) to
// minimize contention; the lock order is always muVert before muAdj.

package core

import "sort"

// AddVertex creates a new isolated vertex and returns its dense id.
// IDs are handed out in ascending order and never reused.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	id := VertexID(len(g.alive))
	g.alive = append(g.alive, true)
	g.adjacency = append(g.adjacency, make(map[VertexID]struct{}))
	g.vertexCount++

	return id
}

// AddVertices creates n isolated vertices and returns their ids in
// ascending order. A non-positive n yields an empty slice.
// Complexity: O(n) amortized.
func (g *Graph) AddVertices(n int) []VertexID {
	if n <= 0 {
		return nil
	}
	ids := make([]VertexID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, g.AddVertex())
	}

	return ids
}

// HasVertex reports whether v exists and has not been removed.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.aliveLocked(v)
}

// AddEdge inserts the undirected edge {u,v}, mirroring both neighbor sets
// to keep the symmetry invariant. Idempotent when the edge already exists.
// Returns ErrSelfLoop when u == v, ErrVertexNotFound when either endpoint
// is absent.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v VertexID) error {
	if u == v {
		return ErrSelfLoop
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.aliveLocked(u) || !g.aliveLocked(v) {
		return ErrVertexNotFound
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, ok := g.adjacency[u][v]; ok {
		return nil // already present; no-op
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.aliveLocked(u) || !g.aliveLocked(v) {
		return false
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// RemoveEdge deletes the undirected edge {u,v} from both neighbor sets.
// Returns ErrVertexNotFound for absent endpoints; removing an absent edge
// is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v VertexID) error {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.aliveLocked(u) || !g.aliveLocked(v) {
		return ErrVertexNotFound
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, ok := g.adjacency[u][v]; !ok {
		return nil
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// RemoveVertex detaches v from every neighbor set before retiring it,
// maintaining symmetry. The id is never reissued.
// Returns ErrVertexNotFound if v does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if !g.aliveLocked(v) {
		return ErrVertexNotFound
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	for nbr := range g.adjacency[v] {
		delete(g.adjacency[nbr], v)
		g.edgeCount--
	}
	g.adjacency[v] = nil
	g.alive[v] = false
	g.vertexCount--

	return nil
}

// Neighbors returns the ids adjacent to v, sorted ascending for
// deterministic iteration. The slice is a copy; mutating it cannot corrupt
// the Graph.
// Complexity: O(deg(v) · log deg(v)).
func (g *Graph) Neighbors(v VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.aliveLocked(v) {
		return nil, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]VertexID, 0, len(g.adjacency[v]))
	for nbr := range g.adjacency[v] {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns |neighbors(v)|. Derived from the neighbor set, never
// stored independently, so it cannot drift.
// Complexity: O(1).
func (g *Graph) Degree(v VertexID) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.aliveLocked(v) {
		return 0, ErrVertexNotFound
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adjacency[v]), nil
}

// Vertices returns all live vertex ids in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]VertexID, 0, g.vertexCount)
	for i, ok := range g.alive {
		if ok {
			out = append(out, VertexID(i))
		}
	}

	return out
}

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertexCount
}

// EdgeCount returns the number of undirected edges, each counted once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Graph: same ids, same edges,
// independent storage. Useful for destructive experiments on a shared
// instance.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	c := &Graph{
		alive:       make([]bool, len(g.alive)),
		adjacency:   make([]map[VertexID]struct{}, len(g.adjacency)),
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
	}
	copy(c.alive, g.alive)
	for i, set := range g.adjacency {
		if set == nil {
			continue
		}
		dup := make(map[VertexID]struct{}, len(set))
		for nbr := range set {
			dup[nbr] = struct{}{}
		}
		c.adjacency[i] = dup
	}

	return c
}

// aliveLocked reports liveness; callers must hold muVert.
func (g *Graph) aliveLocked(v VertexID) bool {
	return v >= 0 && int(v) < len(g.alive) && g.alive[v]
}
