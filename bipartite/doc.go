// Package bipartite answers two questions about the subgraph of a core.Graph
// induced by a vertex set:
//
//   - IsBipartite: is the induced subgraph 2-colorable?
//   - Bipartition: for a set already known to be connected and bipartite,
//     what are its two color classes?
//
// IsBipartite uses a union-find forest over 2n slots: slot x means "x has
// color A", slot x+n means "x has color B". Every induced edge (u,v) unites
// u with v+n and u+n with v. The set is bipartite iff no member ends up with
// both of its slots in one class. Self-loops therefore make a vertex
// non-bipartite on its own.
//
// Bipartition colors by BFS depth parity from the smallest member: even
// depth goes to side 0, odd depth to side 1. Its precondition (connected and
// bipartite) is the caller's responsibility and is not checked; a
// disconnected input leaves unreached members out of both sides.
//
// Complexity (k = |set|, n = g.Order(), w = 64)
//
//   - IsBipartite: O(n + k · n/w + |E(set)| · α(n))
//   - Bipartition: O(k · n/w)
package bipartite
