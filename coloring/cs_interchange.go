// Package coloring: modified Connected Sequential engine with color
// interchange.

package coloring

import (
	"github.com/katalvlaran/foldcolor/core"
)

// ConnectedSequential colors g with `folds` colors per vertex by
// processing vertices in a connectivity-respecting order (breadth-first
// from the lowest-numbered vertex of each component) and giving each
// vertex the lowest-numbered feasible colors until it reaches quota.
//
// Before opening a brand-new color, the engine attempts a Kempe-style
// vertex interchange: when every existing color is blocked, it looks for
// a blocking color held by exactly one neighbor w of the current vertex
// and tries to relocate w to another existing color, which frees the
// blocking color. The search examines only the colors actually blocking
// the current vertex and tries at most InterchangeDepth replacement
// colors per blocking color; depth 0 disables the search, degenerating to
// plain connected-sequential.
//
// Returns ErrGraphNil, ErrInvalidFoldCount, ErrOptionViolation for bad
// input, or the context error on cancellation. An empty graph yields a
// completed empty Result with ColorsUsed 0.
//
// Complexity: O(folds · V · C · (1 + depth·d_max)) time where C is the
// number of colors opened; O(V) extra space for the ordering.
func ConnectedSequential(g *core.Graph, folds int, opts ...Option) (*Result, error) {
	o, err := validate(g, folds, opts)
	if err != nil {
		return nil, err
	}

	st := NewState(g, folds)
	order := connectedOrder(st)

	for _, v := range order {
		for !st.IsComplete(v) {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			if assignLowest(st, v) {
				continue
			}
			if o.InterchangeDepth > 0 && interchange(st, v, o.InterchangeDepth) {
				continue
			}
			// no existing color reachable: extend the palette
			st.TryAssign(v, st.OpenNewColor())
		}
	}

	return newResult(st), nil
}

// assignLowest gives v the lowest-numbered existing color it can legally
// take. Returns false when every existing color is blocked or already
// held.
func assignLowest(st *State, v core.VertexID) bool {
	for c := ColorID(1); int(c) <= st.ColorsUsed(); c++ {
		if st.TryAssign(v, c) {
			return true
		}
	}

	return false
}

// interchange searches for a swap that frees an existing color for v.
//
// For each color c1 blocking v (ascending), the swap is possible only
// when exactly one neighbor w holds c1: relocating w to some other
// existing color c2 — legal for w — removes the last obstacle and v takes
// c1. Up to `depth` candidate replacement colors are examined per
// blocking color. Both classes stay independent throughout: w's move is
// checked against w's own neighborhood before anything mutates.
func interchange(st *State, v core.VertexID, depth int) bool {
	for c1 := ColorID(1); int(c1) <= st.ColorsUsed(); c1++ {
		if st.Has(v, c1) || !st.Blocked(v, c1) {
			continue
		}
		w, sole := soleBlockingNeighbor(st, v, c1)
		if !sole {
			continue
		}

		// candidate replacement colors for w, ascending; each examined
		// candidate counts against the search depth
		attempts := 0
		for c2 := ColorID(1); int(c2) <= st.ColorsUsed() && attempts < depth; c2++ {
			if c2 == c1 || st.Has(w, c2) {
				continue
			}
			attempts++
			if st.Blocked(w, c2) {
				continue
			}
			// relocate w, then claim the freed color for v
			st.unassign(w, c1)
			st.TryAssign(w, c2)
			st.TryAssign(v, c1)

			return true
		}
	}

	return false
}

// soleBlockingNeighbor returns the single neighbor of v holding c, and
// whether it is indeed the only one.
func soleBlockingNeighbor(st *State, v core.VertexID, c ColorID) (core.VertexID, bool) {
	var holder core.VertexID
	count := 0
	for _, nbr := range st.adj[v] {
		if st.Has(nbr, c) {
			holder = nbr
			if count++; count > 1 {
				return 0, false
			}
		}
	}

	return holder, count == 1
}
