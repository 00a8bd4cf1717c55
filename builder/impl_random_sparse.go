// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Erdős–Rényi G(n,p): each pair {i,j}, i<j, is included independently with
// probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i ascending, then j ascending, one draw each, so
// a fixed seed fixes the graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		d.Grow(n)

		w := edgeWriter{d: d, method: methodRandomSparse}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch p {
				case probMin:
				case probMax:
					w.add(i, j)
				default:
					if cfg.rng.Float64() < p {
						w.add(i, j)
					}
				}
			}
		}

		return w.err
	}
}
