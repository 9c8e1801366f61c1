// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// impl_kneser.go — Kneser(n,k) constructor.
//
// Contract:
//   - 1 ≤ k ≤ n (else ErrTooFewVertices).
//   - Vertices are the k-element subsets of {0..n−1} in lexicographic
//     order; edges join disjoint subsets, ascending lexicographic pairs.
//   - C(n,k) vertices — sizes grow fast, callers pick n,k accordingly.
//
// Kneser graphs K(n,k) are the canonical fold-coloring benchmark: their
// fractional chromatic number n/k is hit exactly by a k-fold coloring
// with n colors, so heuristic palettes measure directly against theory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/foldcolor/core"
)

const methodKneser = "Kneser"

// Kneser returns a Constructor that builds the Kneser graph K(n,k).
// Complexity: O(C(n,k)²·k) edge tests.
func Kneser(n, k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < 1 || n < k {
			return fmt.Errorf("%s: need 1 ≤ k ≤ n, got (n=%d, k=%d): %w", methodKneser, n, k, ErrTooFewVertices)
		}

		subsets := combinations(n, k)
		ids := g.AddVertices(len(subsets))
		for i := range subsets {
			for j := i + 1; j < len(subsets); j++ {
				if !disjoint(subsets[i], subsets[j]) {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodKneser, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// combinations enumerates the k-element subsets of {0..n−1} in
// lexicographic order, each as a sorted slice.
func combinations(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)

	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		// not enough elements left to fill the subset
		for e := start; n-e >= k-len(cur); e++ {
			cur = append(cur, e)
			rec(e + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

// disjoint reports whether two sorted int slices share no element.
func disjoint(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return false
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return true
}
