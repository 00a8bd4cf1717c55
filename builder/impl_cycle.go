// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices 0..n-1; edges i—(i+1)%n for i ascending.
//
// Complexity: O(n) time, O(1) extra space.
//
// Odd cycles are the smallest non-bipartite graphs: C_n for odd n has
// exactly n maximal connected bipartite subgraphs (each path P_{n-1}).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodCycle}
		for i := 0; i < n; i++ {
			w.add(i, (i+1)%n)
		}

		return w.err
	}
}
