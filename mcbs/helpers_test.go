package mcbs_test

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// fixture is the 8-vertex, 14-edge reference graph: a K4 on {0,1,2,3}, a
// 4-cycle 4–5–6–7, the bridge 3–4 and the chords 2–5, 1–6, 0–7.
func fixture() *core.Graph {
	return core.MustGraph(8, []core.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
		{U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7}, {U: 4, V: 7},
		{U: 2, V: 5}, {U: 1, V: 6}, {U: 0, V: 7},
	})
}

// fixtureSolutions is the expected discovery order on fixture().
var fixtureSolutions = [][]int{
	{0, 1, 4, 5, 6, 7},
	{0, 2, 4, 6, 7},
	{1, 2, 4, 5, 6, 7},
	{0, 2, 4, 5, 6},
	{0, 3, 4, 5, 6, 7},
	{1, 3, 4, 5, 7},
	{2, 3, 4, 5, 6, 7},
	{1, 3, 4, 6},
	{1, 3, 5, 6, 7},
	{0, 2, 5, 7},
}

// randomGraph draws a G(n,p) graph from r.
func randomGraph(r *rand.Rand, n int, p float64) *core.Graph {
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				edges = append(edges, core.Edge{U: u, V: v})
			}
		}
	}
	return core.MustGraph(n, edges)
}

// bruteForce lists every maximal connected bipartite vertex set of g by
// checking all 2^n subsets; keys are sorted for stable comparison.
func bruteForce(g *core.Graph) []vset.Identity {
	n := g.Order()
	valid := func(s vset.Set) bool {
		return bfs.IsConnected(g, s) && bipartite.IsBipartite(g, s)
	}
	var out []vset.Identity
	for mask := 0; mask < 1<<n; mask++ {
		var s vset.Set
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				s.Add(v)
			}
		}
		if !valid(s) {
			continue
		}
		maximal := true
		for v := 0; v < n && maximal; v++ {
			if s.Has(v) {
				continue
			}
			grown := s.Clone()
			grown.Add(v)
			if valid(grown) {
				maximal = false
			}
		}
		if maximal {
			out = append(out, s.Identity())
		}
	}
	sortIdentities(out)
	return out
}

func identities(sets []vset.Set) []vset.Identity {
	out := make([]vset.Identity, len(sets))
	for i, s := range sets {
		out[i] = s.Identity()
	}
	sortIdentities(out)
	return out
}

func sortIdentities(ids []vset.Identity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func members(sets []vset.Set) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = s.Members()
	}
	return out
}
