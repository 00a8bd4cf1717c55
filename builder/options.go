// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; constructors
// themselves only return errors.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
