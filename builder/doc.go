// SPDX-License-Identifier: MIT
//
// Package builder provides deterministic constructors for the graph
// families used in fold-coloring experiments.
//
// What
//
//   - One orchestrator, BuildGraph, composing any number of Constructor
//     closures onto a fresh core.Graph.
//   - Topologies: Cycle, Path, Star, Complete, CompleteBipartite,
//     Kneser, Queen, RandomSparse.
//   - Functional options resolve into an immutable value config;
//     RandomSparse is the only stochastic constructor and demands an
//     explicit RNG (WithSeed / WithRand).
//
// Why
//
//   - Odd cycles, Kneser graphs, and queen boards are the benchmark
//     families for k-fold coloring: their optimal palettes are known, so
//     heuristic output measures directly against theory.
//   - Deterministic emission orders make golden tests and cross-engine
//     comparisons reproducible.
//
// Determinism
//
//	Same constructor arguments, options, and seed ⇒ byte-identical
//	adjacency. Vertices are always added before edges, ids ascending.
//
// Errors
//
//	Constructors return only the package sentinels (ErrTooFewVertices,
//	ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed),
//	wrapped with method context; branch with errors.Is.
package builder
