// Package bfs provides breadth-first search over the subgraph of a core.Graph
// induced by a vertex set, and the two connectivity queries built on it.
//
// What
//
//   - Walk explores vertices of `within` in non-decreasing distance from a
//     start vertex, following only edges whose both endpoints lie in
//     `within`. It returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  vertex → distance (edges) from start, -1 if unreached
//   - Parent: vertex → predecessor in the BFS tree, -1 for start/unreached
//   - Component(g, set, v) returns the vertices of set reachable from v.
//   - IsConnected(g, set) reports whether set induces a connected subgraph.
//
// Determinism
//
//	Neighbors are enqueued in ascending vertex order, so Order, Depth and
//	Parent are fully reproducible for the same inputs.
//
// Complexity (k = |within|, n = g.Order(), w = 64)
//
//   - Time:   O(k · n/w)  (one word-parallel neighborhood scan per visit)
//   - Memory: O(n)
//
// Options
//
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotInSet    if start is not a member of within.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - Wrapped user-supplied OnVisit errors.
package bfs
