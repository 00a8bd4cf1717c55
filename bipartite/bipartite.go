package bipartite

import (
	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/dsu"
	"github.com/katalvlaran/bipenum/vset"
)

// IsBipartite reports whether the subgraph of g induced by set is bipartite.
// The empty set is bipartite.
func IsBipartite(g *core.Graph, set vset.Set) bool {
	n := g.Order()
	forest := dsu.New(2 * n)

	for u := set.Next(0); u >= 0; u = set.Next(u + 1) {
		inside := g.NeighborsWithin(u, set)
		// each undirected pair once; a loop (v == u) is kept
		for v := inside.Next(u); v >= 0; v = inside.Next(v + 1) {
			forest.Unite(u, v+n)
			forest.Unite(u+n, v)
		}
	}

	for u := set.Next(0); u >= 0; u = set.Next(u + 1) {
		if forest.Same(u, u+n) {
			return false
		}
	}

	return true
}

// Bipartition splits a connected bipartite set into its two color classes.
// The smallest member is always on side0. An empty set yields two empty sets.
func Bipartition(g *core.Graph, set vset.Set) (side0, side1 vset.Set) {
	start, ok := set.Min()
	if !ok {
		return vset.Set{}, vset.Set{}
	}
	res, err := bfs.Walk(g, set, start)
	if err != nil {
		// start is a member by construction; only a foreign vertex ≥ n lands here
		return vset.Set{}, vset.Set{}
	}
	for _, v := range res.Order {
		if res.Depth[v]%2 == 0 {
			side0.Add(v)
		} else {
			side1.Add(v)
		}
	}

	return side0, side1
}
