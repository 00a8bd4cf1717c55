// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center is vertex 0; leaves 1..n-1 are joined to it in ascending order.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodStar}
		for leaf := 1; leaf < n; leaf++ {
			w.add(starCenter, leaf)
		}

		return w.err
	}
}
