// SPDX-License-Identifier: MIT
// Package: bipenum/core
//
// types.go - Graph, Edge, options and sentinel errors.

package core

import (
	"errors"

	"github.com/katalvlaran/bipenum/vset"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was supplied when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a repeated pair when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected pair of vertices. Edges returned by a Graph are
// canonical: U ≤ V.
type Edge struct {
	U int
	V int
}

// Canonical returns e with its endpoints ordered so that U ≤ V.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// GraphOption configures NewGraph.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	allowLoops bool // accept (v,v)
	allowMulti bool // collapse repeated pairs
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}

// WithMultiEdges collapses repeated pairs instead of rejecting them.
func WithMultiEdges() GraphOption {
	return func(o *graphOptions) { o.allowMulti = true }
}

// Graph is an immutable simple undirected graph over vertices 0..n-1.
//
// adj[v] holds the neighborhood of v (including v itself iff v has a loop).
// edges keeps the canonical edge list in ascending (U,V) order.
type Graph struct {
	n     int
	adj   []vset.Set
	edges []Edge
	loops int
}
