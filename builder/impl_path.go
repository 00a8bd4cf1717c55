// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices 0..n-1; edges i—(i+1) for i ascending.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodPath}
		for i := 0; i+1 < n; i++ {
			w.add(i, i+1)
		}

		return w.err
	}
}
