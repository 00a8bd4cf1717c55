// Package core provides the immutable, undirected, integer-indexed Graph that
// every enumeration in bipenum runs over.
//
// The Graph G = (V,E) has V = {0, 1, ..., n-1} and an edge relation stored as
// one adjacency bitset per vertex, so HasEdge is O(1) and the neighborhood of
// a vertex restricted to any vertex set is a single word-parallel intersection.
//
// Why an immutable graph?
//
//   - Enumeration runs assume the graph never changes mid-run; making the type
//     read-only after NewGraph removes the need for locks entirely.
//   - Edges are canonicalized at construction (U < V), so (u,v) and (v,u) are
//     the same edge and symmetry is an invariant rather than a convention.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Accept self-loops. A looped vertex forms an odd cycle on its own and
//	    therefore never belongs to a bipartite induced subgraph.
//	    Without it, NewGraph rejects (v,v) with ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Collapse repeated pairs instead of rejecting them.
//	    Without it, a repeated pair returns ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	NewGraph(n, edges, opts...) (*Graph, error) // O(n²/w + |E|)
//	Order() int                                 // O(1)
//	Size() int                                  // O(1)
//	HasEdge(u, v int) bool                      // O(1)
//	HasLoop(v int) bool                         // O(1)
//	Neighborhood(v int) vset.Set                // O(n/w), copy
//	Neighbors(v int) []int                      // O(n/w + deg), ascending
//	Degree(v int) int                           // O(n/w)
//	Edges() []Edge                              // O(|E|), sorted
//
// Errors:
//
//	ErrNegativeOrder       – n < 0
//	ErrVertexOutOfRange    – edge endpoint outside [0,n)
//	ErrLoopNotAllowed      – self-loop without WithLoops
//	ErrMultiEdgeNotAllowed – repeated pair without WithMultiEdges
//
// Queries with a vertex outside [0,n) are programming errors and panic, the
// same way an out-of-range slice index does.
package core
