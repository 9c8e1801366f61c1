// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// impl_complete.go — Complete(n), CompleteBipartite(a,b), Star(n).
//
// Contract:
//   - Complete: n ≥ 1; edges (i,j) for all i<j, ascending lexicographic.
//   - CompleteBipartite: a,b ≥ 1; left side first, then right, cross edges
//     ascending lexicographic.
//   - Star: n ≥ 2; vertex 0 is the center, spokes in ascending leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	methodStar      = "Star"
)

// Complete returns a Constructor that builds the complete graph K_n.
// Every color class has size one, so a K_n instance pins the fold-coloring
// palette at exactly n·k — a handy exactness fixture.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{a,b}: the first a
// ids form the left side, the next b the right.
// Complexity: O(a·b) edges.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if a < 1 || b < 1 {
			return fmt.Errorf("%s: sides (%d,%d) must be ≥ 1: %w", methodBipartite, a, b, ErrTooFewVertices)
		}
		left := g.AddVertices(a)
		right := g.AddVertices(b)
		for _, u := range left {
			for _, v := range right {
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star: the first id is the
// center, the remaining n−1 are leaves.
// Complexity: O(n) edges.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodStar, n, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for _, leaf := range ids[1:] {
			if err := g.AddEdge(ids[0], leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodStar, ids[0], leaf, err)
			}
		}

		return nil
	}
}
