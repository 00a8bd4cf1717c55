// SPDX-License-Identifier: MIT
// Package: bipenum/core
//
// graph.go - construction and read-only queries.
//
// Determinism:
//   - Edges() is sorted by (U,V); Neighbors() is ascending.
//
// Concurrency:
//   - A Graph is never mutated after NewGraph returns; all methods are safe
//     for concurrent readers without locking.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bipenum/vset"
)

// NewGraph builds a graph with n vertices and the given undirected edges.
//
// Implementation:
//   - Stage 1: Validate n and resolve options.
//   - Stage 2: Canonicalize each edge, validate endpoints, loops and repeats.
//   - Stage 3: Mirror every edge into both adjacency rows and sort the edge list.
//
// Errors:
//   - ErrNegativeOrder, ErrVertexOutOfRange, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, each wrapped with the offending edge.
//
// Complexity:
//   - Time O(n²/64 + |E| log |E|), Space O(n²/64 + |E|).
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		n:     n,
		adj:   make([]vset.Set, n),
		edges: make([]Edge, 0, len(edges)),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = vset.WithCapacity(n)
	}

	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
		e = e.Canonical()
		if e.U == e.V && !o.allowLoops {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d)", ErrLoopNotAllowed, i, e.U, e.V)
		}
		if g.adj[e.U].Has(e.V) {
			if !o.allowMulti {
				return nil, fmt.Errorf("%w: edge #%d (%d,%d)", ErrMultiEdgeNotAllowed, i, e.U, e.V)
			}
			continue
		}
		g.adj[e.U].Add(e.V)
		g.adj[e.V].Add(e.U)
		if e.U == e.V {
			g.loops++
		}
		g.edges = append(g.edges, e)
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}

		return g.edges[i].V < g.edges[j].V
	})

	return g, nil
}

// MustGraph is NewGraph that panics on error; intended for fixtures.
func MustGraph(n int, edges []Edge, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, edges, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct edges, loops included.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the full vertex set {0..n-1}.
func (g *Graph) Vertices() vset.Set { return vset.Range(g.n) }

func (g *Graph) check(v int) {
	if v < 0 || v >= g.n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n))
	}
}

// HasEdge reports whether u and v are adjacent; argument order is irrelevant.
func (g *Graph) HasEdge(u, v int) bool {
	g.check(u)
	g.check(v)

	return g.adj[u].Has(v)
}

// HasLoop reports whether v carries a self-loop.
func (g *Graph) HasLoop(v int) bool {
	g.check(v)

	return g.adj[v].Has(v)
}

// Loops returns the number of looped vertices.
func (g *Graph) Loops() int { return g.loops }

// Neighborhood returns a copy of the neighborhood N(v).
func (g *Graph) Neighborhood(v int) vset.Set {
	g.check(v)

	return g.adj[v].Clone()
}

// NeighborsWithin returns N(v) ∩ within without copying the adjacency row.
func (g *Graph) NeighborsWithin(v int, within vset.Set) vset.Set {
	g.check(v)

	return g.adj[v].Intersect(within)
}

// AdjacentTo reports whether v has at least one neighbor in set.
func (g *Graph) AdjacentTo(v int, set vset.Set) bool {
	g.check(v)

	return g.adj[v].Intersects(set)
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	g.check(v)

	return g.adj[v].Members()
}

// Degree returns |N(v)|; a loop counts once.
func (g *Graph) Degree(v int) int {
	g.check(v)

	return g.adj[v].Len()
}

// Edges returns a copy of the canonical edge list sorted by (U,V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Induced returns the edges of the subgraph induced by set, sorted by (U,V).
func (g *Graph) Induced(set vset.Set) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if set.Has(e.U) && set.Has(e.V) {
			out = append(out, e)
		}
	}

	return out
}
