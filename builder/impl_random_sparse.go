// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// impl_random_sparse.go — RandomSparse(n,p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires a seeded RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   - Pairs are drawn in ascending lexicographic order, so a fixed seed
//     reproduces the exact same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that builds G(n,p): each of the
// C(n,2) pairs becomes an edge independently with probability p.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomSparse, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
