// Package coloring: modified Approximate Maximum Independent Set engine.

package coloring

import (
	"github.com/katalvlaran/foldcolor/core"
)

// AMIS colors g with `folds` colors per vertex by repeatedly extracting a
// maximal independent set among vertices still short of quota and
// committing a fresh color to it.
//
// Modification for fold coloring: a plain greedy extraction keeps picking
// the same high-degree vertices, which degenerates into one 1-fold
// coloring with every color duplicated k times. To vary the shape of
// successive sets, each vertex carries a "recently used" penalty that is
// subtracted from its degree score and halved every time a new color is
// opened.
//
// Selection rule per extraction step: highest (remaining degree within
// the candidate pool − penalty), ties to the lowest vertex id.
//
// Termination: the pool is non-empty whenever incomplete vertices remain
// and a single vertex always forms an independent set, so every phase
// commits at least one assignment. Worst case opens folds·V colors.
//
// Returns ErrGraphNil, ErrInvalidFoldCount, ErrOptionViolation for bad
// input, or the context error on cancellation. An empty graph yields a
// completed empty Result with ColorsUsed 0.
//
// Complexity: O(C · (V² + E)) time where C is the number of colors
// opened; O(V) extra space per phase.
func AMIS(g *core.Graph, folds int, opts ...Option) (*Result, error) {
	o, err := validate(g, folds, opts)
	if err != nil {
		return nil, err
	}

	st := NewState(g, folds)
	penalty := make([]int, len(st.adj))

	for !st.Complete() {
		// cancellation check once per color phase
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		set := extractIndependentSet(st, penalty)
		c := st.OpenNewColor()

		// decay first, then charge the fresh set, so the vertices just
		// selected carry the strongest bias against reselection
		for i := range penalty {
			penalty[i] /= 2
		}
		for _, v := range set {
			// must succeed: set is independent and each member is below quota
			st.TryAssign(v, c)
			penalty[v]++
		}
	}

	return newResult(st), nil
}

// extractIndependentSet greedily builds a maximal independent set within
// the incomplete vertices: repeatedly pick the pool vertex maximizing
// (pool degree − penalty), ties to the lowest id, then evict it and its
// neighbors from the pool.
func extractIndependentSet(st *State, penalty []int) []core.VertexID {
	pool := make(map[core.VertexID]bool, len(st.live))
	poolDeg := make(map[core.VertexID]int, len(st.live))
	for _, v := range st.live {
		if !st.IsComplete(v) {
			pool[v] = true
		}
	}
	for v := range pool {
		deg := 0
		for _, nbr := range st.adj[v] {
			if pool[nbr] {
				deg++
			}
		}
		poolDeg[v] = deg
	}

	var set []core.VertexID
	for len(pool) > 0 {
		best, bestScore := core.VertexID(-1), 0
		for v := range pool {
			score := poolDeg[v] - penalty[v]
			if best < 0 || score > bestScore || (score == bestScore && v < best) {
				best, bestScore = v, score
			}
		}
		set = append(set, best)

		// evict best and its pool-neighbors; downgrade degrees of the
		// survivors adjacent to the evicted
		evict(st, pool, poolDeg, best)
		for _, nbr := range st.adj[best] {
			if pool[nbr] {
				evict(st, pool, poolDeg, nbr)
			}
		}
	}

	return set
}

// evict removes v from the pool and decrements its pool-neighbors'
// remaining degrees.
func evict(st *State, pool map[core.VertexID]bool, poolDeg map[core.VertexID]int, v core.VertexID) {
	delete(pool, v)
	delete(poolDeg, v)
	for _, nbr := range st.adj[v] {
		if pool[nbr] {
			poolDeg[nbr]--
		}
	}
}
