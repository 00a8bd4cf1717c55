// Package bipenum enumerates the maximal connected induced bipartite
// subgraphs of an undirected graph, each exactly once, by reverse search
// over the implicit graph of solutions.
//
// A solution is a vertex set S such that G[S] is connected and bipartite and
// no vertex can be added to S without breaking one of the two. There can be
// exponentially many; the enumerator never holds a candidate list, only the
// solutions found so far and a stack of partially expanded ones.
//
// Layout (leaves first):
//
//	vset/        bitset vertex sets and their canonical Identity keys
//	core/        immutable integer Graph (vertices 0..n-1)
//	dsu/         union-find, used for the bipartiteness test
//	bfs/         restricted breadth-first walks, components, connectivity
//	bipartite/   IsBipartite and Bipartition of induced subgraphs
//	index/       discovery index: identity → dense index (memory, badger)
//	revsearch/   generic reverse-search driver (Problem[S], hooks, options)
//	mcbs/        the concrete problem: Closure, Neighbors, Enumerate, Verify
//	builder/     deterministic fixture graphs (cycle, grid, platonic, G(n,p) …)
//	graphio/     edge-list text format reader/writer
//	cmd/bipenum  command-line front end
//
// Quick example: the 5-cycle has five solutions, each a path on four vertices.
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(5))
//	res, _ := mcbs.Enumerate(g)
//	for _, s := range res.Solutions {
//		fmt.Println(s) // [0 1 2 3], [0 1 2 4], …
//	}
//
//	go install github.com/katalvlaran/bipenum/cmd/bipenum@latest
package bipenum
