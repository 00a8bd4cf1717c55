// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is vertex r*cols + c (row-major).
//   • For each cell in row-major order emit Right then Bottom when present.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
// Grids are bipartite and connected, so they have exactly one solution.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		d.Grow(rows * cols)

		w := edgeWriter{d: d, method: methodGrid}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					w.add(u, u+1)
				}
				if r+1 < rows {
					w.add(u, u+cols)
				}
			}
		}

		return w.err
	}
}
