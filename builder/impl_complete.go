// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges (i,j) for i<j in lexicographic order; n(n-1)/2 in total.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. Every edge of K_n is a
// maximal connected bipartite subgraph, so it is the worst case for output
// size relative to input.
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodComplete}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w.add(i, j)
			}
		}

		return w.err
	}
}
