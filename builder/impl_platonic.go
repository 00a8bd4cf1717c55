// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • Shell vertices 0..V-1 and the fixed edge set from variants_platonic.go.
//   • withCenter adds hub vertex V with spokes to 0..V-1 in ascending order.
//   • Unknown name → ErrOptionViolation.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a hub joined to every shell vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *Draft, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodPlatonicSolid}
		for _, e := range edges {
			w.add(e.U, e.V)
		}
		if withCenter {
			d.Grow(n + 1)
			for i := 0; i < n; i++ {
				w.add(n, i)
			}
		}

		return w.err
	}
}
