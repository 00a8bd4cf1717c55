// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// config.go - resolved configuration and the edge-list draft.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bipenum/core"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Draft is the mutable edge list constructors write into.
// Vertices are the dense range [0, Order()).
type Draft struct {
	n     int
	edges []core.Edge
	seen  map[core.Edge]struct{}
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{seen: make(map[core.Edge]struct{})}
}

// Order returns the current vertex count.
func (d *Draft) Order() int { return d.n }

// Size returns the number of distinct edges recorded so far.
func (d *Draft) Size() int { return len(d.edges) }

// Grow raises the vertex count to at least n.
func (d *Draft) Grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// AddEdge records u—v. Both endpoints must already exist. A pair that is
// already present is ignored and reported as false.
func (d *Draft) AddEdge(u, v int) (bool, error) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return false, fmt.Errorf("AddEdge(%d,%d): order %d: %w", u, v, d.n, core.ErrVertexOutOfRange)
	}
	e := core.Edge{U: u, V: v}.Canonical()
	if _, dup := d.seen[e]; dup {
		return false, nil
	}
	d.seen[e] = struct{}{}
	d.edges = append(d.edges, e)

	return true, nil
}

// Graph freezes the draft.
func (d *Draft) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	return core.NewGraph(d.n, d.edges, opts...)
}
