// Package core defines the central Graph type used by every fold-coloring
// engine, and provides thread-safe primitives for building, querying, and
// cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertex liveness, muAdj for adjacency sets), so a builder goroutine and
// reader goroutines can interleave safely, and several coloring engines may
// read one Graph concurrently.
//
// This file declares VertexID, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist (or was removed).
//	ErrSelfLoop       - edge endpoints are equal; loops are never allowed.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent
	// or removed vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide. Fold-coloring
	// legality is meaningless on loops, so they are rejected outright.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// VertexID identifies a vertex within its Graph.
//
// IDs are dense integers handed out by AddVertex in ascending order,
// starting at 0. An ID stays valid for the lifetime of the Graph and is
// never reissued, even after RemoveVertex.
type VertexID int

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for n vertices.
// Purely an allocation hint; zero or negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is the core in-memory graph data structure: undirected, unweighted,
// simple (no loops, no parallel edges).
//
// Adjacency is stored as one hash set per vertex, indexed by the dense
// VertexID, which keeps edge existence, insertion, and deletion O(1) while
// the heavy set intersections in the coloring engines stay cheap.
// muVert protects the liveness slice; muAdj protects adjacency sets.
type Graph struct {
	muVert sync.RWMutex // guards alive, vertexCount
	muAdj  sync.RWMutex // guards adjacency, edgeCount

	capHint int // pre-size hint from WithCapacity

	// Storage, indexed by VertexID.
	alive     []bool                   // false once removed; slots never reused
	adjacency []map[VertexID]struct{}  // symmetric neighbor sets

	vertexCount int // live vertices
	edgeCount   int // undirected edges, each counted once
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(capacity hint).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.alive = make([]bool, 0, g.capHint)
	g.adjacency = make([]map[VertexID]struct{}, 0, g.capHint)

	return g
}
