// Package foldcolor computes approximate k-fold vertex colorings: every
// vertex receives exactly k distinct colors, adjacent vertices share none,
// and the heuristics try to keep the total palette small.
//
// 🚀 What is foldcolor?
//
//	A thread-aware, in-memory toolkit for fold-coloring experiments:
//		• Core primitives: dense-integer vertex graphs, safe under locks
//		• Three heuristics: AMIS, DSATUR (two saturation policies),
//		  Connected-Sequential with Kempe-style interchange
//		• Generators: cycles, complete & bipartite graphs, Kneser, queen boards
//		• DIMACS: load standard .col instances
//		• Experiments: batch runs, timing, colors-to-folds ratios, CSV
//		• Catalog: persist run records for cross-session comparison
//
// ✨ Why choose foldcolor?
//
//   - Deterministic – fixed tie-breaks, reproducible colorings
//   - Rock-solid guarantees – legality and completeness invariants enforced
//     at the single TryAssign choke point
//   - Minimal API – build a graph, pick an engine, read the result
//
// Everything is organized under focused subpackages:
//
//	core/       — fundamental Graph type & thread-safe primitives
//	coloring/   — shared coloring State plus the three engines
//	builder/    — deterministic topology constructors for experiments
//	dimacs/     — DIMACS .col instance reader
//	catalog/    — persistent store of coloring run records
//	experiment/ — batch runner & aggregation across engines and folds
//
// Quick ASCII example (triangle, k=2 → 6 colors):
//
//	    0
//	   ╱ ╲
//	  1───2
//
// See coloring's package documentation for the algorithmic details.
package foldcolor
