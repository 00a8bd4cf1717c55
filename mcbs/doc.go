// Package mcbs enumerates the maximal connected bipartite induced subgraphs
// of a core.Graph: every vertex set S such that G[S] is connected and
// bipartite and no single vertex can be added while keeping both properties.
//
// The family can be exponential in n, so it is never materialized up front.
// Instead Enumerator implements revsearch.Problem and the family is walked
// by reverse search:
//
//   - Closure(seed): greedy completion. Scan vertices 0..n-1, tentatively add
//     each absent one, keep it if the set stays connected and bipartite and
//     then restart the scan from 0 (an addition can turn a previously
//     rejected vertex admissible); otherwise undo and move on. A full pass
//     without an addition ends the closure. Closure(∅) is the start solution.
//
//   - Neighbors(S): with (B0, B1) the bipartition of S, every v ∉ S yields
//     two candidates, (B0 ∪ (B1 \ N(v))) ∪ {v} and (B1 ∪ (B0 \ N(v))) ∪ {v}.
//     Each candidate is cut down to the component containing v and closed.
//     Removing v's neighbors from the side v joins is the minimal edit that
//     keeps the set bipartite; trying both sides covers both colorings of v.
//
//   - Enumerate(g): runs revsearch.Traverse over the Enumerator and returns
//     the solutions, their discovery indices and the discovery edges.
//
// Every step is polynomial in n: a closure performs at most n additions,
// each followed by a rescan of O(n) bipartiteness tests, and Neighbors
// performs 2(n - |S|) closures. This is what gives the enumeration polynomial
// delay per solution when combined with revsearch.AlternatingOrder.
//
// Self-loops: a looped vertex is an odd cycle on its own, so it never joins
// a solution and Neighbors skips it.
//
// Determinism: all scans run in ascending vertex order, so repeated runs on
// the same graph produce identical indices and edges.
package mcbs
