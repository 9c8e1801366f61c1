// Package coloring implements approximate k-fold vertex coloring on
// graphs represented by *core.Graph: every vertex receives exactly k
// distinct colors, adjacent vertices share no color, and the heuristics
// try to keep the total palette small.
//
// The key engines offered are:
//
//   - AMIS (modified Approximate Maximum Independent Set)
//
//   - Method: extract a maximal independent set among below-quota
//     vertices, commit a fresh color to it, repeat; a decaying
//     "recently used" penalty varies the shape of successive sets.
//
//   - Time:   O(C · (V² + E)), C = colors opened.
//
//   - Use when color classes should stay large and balanced.
//
//   - DSATUR (modified, two saturation policies)
//
//   - Method: always color the most saturated incomplete vertex with the
//     lowest feasible color; saturation is either neighbor colors only
//     (SaturationOuter) or assigned plus neighbor colors
//     (SaturationTotal).
//
//   - Time:   O(folds · V · (C + d_max·log V)) with the red-black
//     priority view updated locally after every assignment.
//
//   - The strongest general-purpose choice of the three.
//
//   - ConnectedSequential (modified, with color interchange)
//
//   - Method: breadth-first connected ordering, lowest feasible color
//     per slot; before opening a new color, attempt a Kempe-style
//     relocation of the single blocking neighbor to free an existing
//     color (WithInterchangeDepth bounds the search; 0 disables it).
//
//   - Time:   O(folds · V · C · (1 + depth·d_max)).
//
//   - Cheap choice for near-linear runs on sparse instances.
//
// # State
//
// All engines drive a shared State: TryAssign is the single mutation
// point and refuses any assignment violating the fold quota or
// color-class independence, so a finished run always satisfies
//
//	|assigned(v)| = folds            for every vertex v, and
//	assigned(u) ∩ assigned(v) = ∅    for every edge (u,v).
//
// Each engine run owns its State exclusively; the input Graph is only
// read, so several engines may run on one Graph concurrently.
//
// # Determinism
//
// Every tie is broken by a fixed rule (lowest vertex id, ascending color
// scan, ascending component roots), so identical inputs give identical
// colorings — no RNG anywhere in this package.
//
// # Errors
//
// Malformed input is rejected before any engine iterates: ErrGraphNil,
// ErrInvalidFoldCount, ErrOptionViolation. A zero-vertex graph is not an
// error; it yields a completed empty Result with ColorsUsed 0. Inside an
// engine, TryAssign failure is an expected control-flow signal, never an
// error.
package coloring
