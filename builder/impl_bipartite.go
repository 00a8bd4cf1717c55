// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is 0..n1-1, right side is n1..n1+n2-1.
//   • Edges left-major: for each left i ascending, each right j ascending.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, minPartitionSize, n1, n2, ErrTooFewVertices)
		}
		d.Grow(n1 + n2)

		w := edgeWriter{d: d, method: methodCompleteBipartite}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				w.add(i, j)
			}
		}

		return w.err
	}
}
