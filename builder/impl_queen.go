// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// impl_queen.go — Queen(rows,cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r,c) has id r·cols + c (row-major).
//   - Edges join squares sharing a row, column, or diagonal, ascending
//     lexicographic pairs — the DIMACS queenN_N family.

package builder

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

const methodQueen = "Queen"

// Queen returns a Constructor that builds the queen-move graph of a
// rows×cols chessboard.
// Complexity: O((rows·cols)²) edge tests.
func Queen(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: board (%d,%d) must be ≥ 1×1: %w", methodQueen, rows, cols, ErrTooFewVertices)
		}

		n := rows * cols
		ids := g.AddVertices(n)
		for i := 0; i < n; i++ {
			ri, ci := i/cols, i%cols
			for j := i + 1; j < n; j++ {
				rj, cj := j/cols, j%cols
				if ri != rj && ci != cj && ri-rj != ci-cj && ri-rj != cj-ci {
					continue // no queen move between the squares
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodQueen, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
