// Package coloring: the shared ColoringState implementation.
//
// State is the single mutation point for all three engines: TryAssign is
// the only way a color reaches a vertex, and it refuses any assignment
// that would break the fold quota or the color-class independence
// invariant. Engines therefore cannot produce an illegal coloring, only a
// larger-than-necessary palette.

package coloring

import (
	"sort"

	"github.com/katalvlaran/foldcolor/core"
)

// State tracks, per vertex, the set of colors assigned so far, and per
// color, the set of vertices holding it (the color class). A per-vertex
// multiset of neighbor colors keeps feasibility and saturation queries
// O(1) per color.
//
// A State belongs to exactly one engine run; it is never shared between
// engines.
type State struct {
	folds int
	adj   [][]core.VertexID // adjacency snapshot, indexed by VertexID
	live  []core.VertexID   // vertices to be colored, ascending

	assigned  []map[ColorID]struct{}          // vertex → color set
	classOf   map[ColorID]map[core.VertexID]struct{} // color → class
	outColors []map[ColorID]int               // vertex → neighbor-color multiset

	colorCount int // distinct colors ever opened
	complete   int // vertices at quota
}

// NewState creates an empty coloring state for one run of one engine on
// one graph with one fold count. The graph is snapshotted; later graph
// mutations do not affect the run.
// Complexity: O(V + E·log d_max).
func NewState(g *core.Graph, folds int) *State {
	adj := g.AdjacencyView()
	live := g.Vertices()

	st := &State{
		folds:     folds,
		adj:       adj,
		live:      live,
		assigned:  make([]map[ColorID]struct{}, len(adj)),
		classOf:   make(map[ColorID]map[core.VertexID]struct{}),
		outColors: make([]map[ColorID]int, len(adj)),
	}
	for _, v := range live {
		st.assigned[v] = make(map[ColorID]struct{}, folds)
		st.outColors[v] = make(map[ColorID]int)
	}

	return st
}

// Folds returns the fold quota k of this run.
func (st *State) Folds() int { return st.folds }

// Vertices returns the vertices this run colors, ascending.
func (st *State) Vertices() []core.VertexID { return st.live }

// Neighbors returns the adjacency snapshot for v (sorted ascending).
func (st *State) Neighbors(v core.VertexID) []core.VertexID { return st.adj[v] }

// ColorsUsed returns the number of distinct colors ever opened.
// It never decreases during a run.
func (st *State) ColorsUsed() int { return st.colorCount }

// OpenNewColor allocates and returns a fresh color id (1-based,
// monotonically increasing).
func (st *State) OpenNewColor() ColorID {
	st.colorCount++

	return ColorID(st.colorCount)
}

// Has reports whether v currently holds c.
func (st *State) Has(v core.VertexID, c ColorID) bool {
	_, ok := st.assigned[v][c]

	return ok
}

// IsComplete reports whether v has reached its fold quota.
func (st *State) IsComplete(v core.VertexID) bool {
	return len(st.assigned[v]) == st.folds
}

// Complete reports whether every vertex has reached its fold quota.
func (st *State) Complete() bool { return st.complete == len(st.live) }

// Blocked reports whether some neighbor of v currently holds c.
func (st *State) Blocked(v core.VertexID, c ColorID) bool {
	return st.outColors[v][c] > 0
}

// OuterSaturation returns the number of distinct colors held by any
// neighbor of v.
func (st *State) OuterSaturation(v core.VertexID) int {
	return len(st.outColors[v])
}

// TotalSaturation returns |assigned(v)| plus the distinct neighbor-color
// count.
func (st *State) TotalSaturation(v core.VertexID) int {
	return len(st.assigned[v]) + len(st.outColors[v])
}

// TryAssign records c on v if and only if v is below its quota, does not
// already hold c, c has been opened, and no neighbor of v holds c.
// Returns false without mutation otherwise; failure is control flow, not
// an error.
// Complexity: O(deg(v)) for the inverse-index update, O(1) checks.
func (st *State) TryAssign(v core.VertexID, c ColorID) bool {
	if c < 1 || int(c) > st.colorCount {
		return false
	}
	if len(st.assigned[v]) >= st.folds {
		return false
	}
	if _, dup := st.assigned[v][c]; dup {
		return false
	}
	if st.outColors[v][c] > 0 {
		return false
	}

	st.assigned[v][c] = struct{}{}
	class := st.classOf[c]
	if class == nil {
		class = make(map[core.VertexID]struct{})
		st.classOf[c] = class
	}
	class[v] = struct{}{}
	for _, nbr := range st.adj[v] {
		st.outColors[nbr][c]++
	}
	if len(st.assigned[v]) == st.folds {
		st.complete++
	}

	return true
}

// unassign removes c from v, maintaining the inverse index. Used only by
// the interchange search; engines never retract colors otherwise.
func (st *State) unassign(v core.VertexID, c ColorID) {
	if _, ok := st.assigned[v][c]; !ok {
		return
	}
	if len(st.assigned[v]) == st.folds {
		st.complete--
	}
	delete(st.assigned[v], c)
	delete(st.classOf[c], v)
	for _, nbr := range st.adj[v] {
		if st.outColors[nbr][c]--; st.outColors[nbr][c] == 0 {
			delete(st.outColors[nbr], c)
		}
	}
}

// Assigned returns v's colors, sorted ascending.
func (st *State) Assigned(v core.VertexID) []ColorID {
	out := make([]ColorID, 0, len(st.assigned[v]))
	for c := range st.assigned[v] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ColorClass returns the vertices holding c, sorted ascending.
func (st *State) ColorClass(c ColorID) []core.VertexID {
	out := make([]core.VertexID, 0, len(st.classOf[c]))
	for v := range st.classOf[c] {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
