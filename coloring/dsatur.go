// Package coloring: modified DSATUR engine.

package coloring

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/foldcolor/core"
)

// DSATUR colors g with `folds` colors per vertex by always serving the
// most saturated incomplete vertex next, assigning it the lowest-numbered
// feasible color and opening a new one only when every existing color is
// blocked.
//
// Two saturation policies are supported (WithSaturationPolicy):
//
//   - SaturationTotal: |assigned(v)| + distinct neighbor colors,
//   - SaturationOuter: distinct neighbor colors only.
//
// Ranking is (saturation desc, degree desc, vertex id asc). With all
// saturations zero at the start this degenerates to picking the
// highest-degree vertex, matching the classic DSATUR opening move.
//
// The priority view lives in a red-black tree and is updated locally: an
// assignment to v can change the rank of v and its neighbors only, so
// only those keys are reinserted.
//
// Returns ErrGraphNil, ErrInvalidFoldCount, ErrOptionViolation for bad
// input, or the context error on cancellation. An empty graph yields a
// completed empty Result with ColorsUsed 0.
//
// Complexity: O(folds · V · (C + d_max·log V)) time where C is the number
// of colors opened; O(V) extra space.
func DSATUR(g *core.Graph, folds int, opts ...Option) (*Result, error) {
	o, err := validate(g, folds, opts)
	if err != nil {
		return nil, err
	}

	st := NewState(g, folds)
	pq := newSaturationQueue(st, o.Policy)

	for !st.Complete() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v := pq.top()

		// lowest feasible existing color, else a fresh one
		assigned := false
		for c := ColorID(1); int(c) <= st.ColorsUsed(); c++ {
			if st.TryAssign(v, c) {
				assigned = true
				break
			}
		}
		if !assigned {
			// a fresh color is held by nobody, so this cannot fail
			st.TryAssign(v, st.OpenNewColor())
		}

		// local priority update: only v and its neighbors moved
		pq.refresh(v)
		for _, nbr := range st.adj[v] {
			pq.refresh(nbr)
		}
	}

	return newResult(st), nil
}

// saturationKey orders the priority view: saturation descending, degree
// descending, id ascending. The id component makes keys unique.
type saturationKey struct {
	sat int
	deg int
	id  core.VertexID
}

// saturationQueue is the lazily-updated priority view over incomplete
// vertices, backed by a red-black tree whose minimum is the next vertex
// to color.
type saturationQueue struct {
	st     *State
	policy SaturationPolicy
	tree   *redblacktree.Tree
	keys   map[core.VertexID]saturationKey // current key per queued vertex
}

func newSaturationQueue(st *State, policy SaturationPolicy) *saturationQueue {
	pq := &saturationQueue{
		st:     st,
		policy: policy,
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			ka, kb := a.(saturationKey), b.(saturationKey)
			if ka.sat != kb.sat {
				return kb.sat - ka.sat // higher saturation first
			}
			if ka.deg != kb.deg {
				return kb.deg - ka.deg // higher degree first
			}

			return int(ka.id - kb.id) // lower id first
		}),
		keys: make(map[core.VertexID]saturationKey, len(st.live)),
	}
	for _, v := range st.live {
		pq.push(v)
	}

	return pq
}

// metric evaluates the configured saturation policy for v.
func (pq *saturationQueue) metric(v core.VertexID) int {
	if pq.policy == SaturationOuter {
		return pq.st.OuterSaturation(v)
	}

	return pq.st.TotalSaturation(v)
}

func (pq *saturationQueue) push(v core.VertexID) {
	key := saturationKey{sat: pq.metric(v), deg: len(pq.st.adj[v]), id: v}
	pq.keys[v] = key
	pq.tree.Put(key, v)
}

// top returns the highest-priority incomplete vertex.
func (pq *saturationQueue) top() core.VertexID {
	return pq.tree.Left().Value.(core.VertexID)
}

// refresh recomputes v's key, dropping v from the view once complete and
// repositioning it only when its rank actually changed.
func (pq *saturationQueue) refresh(v core.VertexID) {
	old, queued := pq.keys[v]
	if !queued {
		return
	}
	if pq.st.IsComplete(v) {
		pq.tree.Remove(old)
		delete(pq.keys, v)
		return
	}
	key := saturationKey{sat: pq.metric(v), deg: old.deg, id: v}
	if key == old {
		return
	}
	pq.tree.Remove(old)
	pq.keys[v] = key
	pq.tree.Put(key, v)
}
