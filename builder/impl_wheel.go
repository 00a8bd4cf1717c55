// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// W_n = C_{n-1} + hub: the rim is Cycle(n-1) on vertices 0..n-2 and the hub
// is vertex n-1, so n ≥ 4.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim edges first (as Cycle), then spokes hub—i for i ascending.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim must be a valid cycle
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		d.Grow(n)

		w := edgeWriter{d: d, method: methodWheel}
		for i := 0; i < hub; i++ {
			w.add(hub, i)
		}

		return w.err
	}
}
