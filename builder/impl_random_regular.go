// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Stub matching: every vertex contributes deg stubs, the stubs are shuffled
// and paired off consecutively. A pairing with a loop or a repeated pair is
// discarded and reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   • n ≥ 1; 0 ≤ deg < n; n·deg even (else ErrTooFewVertices).
//   • cfg.rng is required (else ErrNeedRandSource).
//   • ErrConstructFailed once every attempt has been rejected.
//
// Complexity: O(n·deg) time and space per attempt.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that samples a deg-regular simple graph.
func RandomRegular(n, deg int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if deg < 0 || deg >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if (n*deg)%2 != 0 {
			return fmt.Errorf("%s: n*deg must be even (n=%d, deg=%d): %w",
				methodRandomRegular, n, deg, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}
		d.Grow(n)

		stubs := make([]int, 0, n*deg)
		for i := 0; i < n; i++ {
			for k := 0; k < deg; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			w := edgeWriter{d: d, method: methodRandomRegular}
			for i := 0; i < len(stubs); i += 2 {
				w.add(stubs[i], stubs[i+1])
			}

			return w.err
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free,
// repeat-free edge set.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
