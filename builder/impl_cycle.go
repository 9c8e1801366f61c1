// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   - Cycle: n ≥ 3 (else ErrTooFewVertices); ring edges i→(i+1)%n in ascending i.
//   - Path: n ≥ 2 (else ErrTooFewVertices); chain edges i→i+1 in ascending i.
//   - Complexity: O(n) vertices + O(n) edges each.

package builder

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Odd cycles are the smallest fold-coloring instances where the palette
// must exceed 2k, which makes this the workhorse experiment family.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := g.AddEdge(ids[i], ids[(i+1)%n]); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodCycle, ids[i], ids[(i+1)%n], err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := g.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodPath, ids[i], ids[i+1], err)
			}
		}

		return nil
	}
}
