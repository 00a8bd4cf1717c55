package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
	"github.com/stretchr/testify/assert"
)

// wheel5 is a 5-cycle 0..4 with hub 5 joined to every rim vertex.
func wheel5() *core.Graph {
	return core.MustGraph(6, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0},
		{U: 5, V: 0}, {U: 5, V: 1}, {U: 5, V: 2}, {U: 5, V: 3}, {U: 5, V: 4},
	})
}

// TestIsBipartite covers even and odd cycles, triangles and degenerate sets.
func TestIsBipartite(t *testing.T) {
	g := wheel5()
	cases := []struct {
		name string
		set  vset.Set
		want bool
	}{
		{"empty", vset.Set{}, true},
		{"singleton", vset.New(3), true},
		{"edge", vset.New(0, 1), true},
		{"path on rim", vset.New(0, 1, 2, 3), true},
		{"odd rim cycle", vset.New(0, 1, 2, 3, 4), false},
		{"triangle with hub", vset.New(0, 1, 5), false},
		{"star from hub", vset.New(5, 0, 2), true},
		{"disconnected but bipartite", vset.New(0, 2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bipartite.IsBipartite(g, tc.set))
		})
	}
}

// TestIsBipartite_Loop verifies a self-loop alone breaks bipartiteness.
func TestIsBipartite_Loop(t *testing.T) {
	g := core.MustGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 1}, {U: 1, V: 2}}, core.WithLoops())
	assert.False(t, bipartite.IsBipartite(g, vset.New(1)))
	assert.True(t, bipartite.IsBipartite(g, vset.New(0)))
	assert.False(t, bipartite.IsBipartite(g, vset.New(0, 1, 2)))
}

// TestIsBipartite_EvenCycle checks a longer even cycle across a word boundary.
func TestIsBipartite_EvenCycle(t *testing.T) {
	const n = 70
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{U: i, V: (i + 1) % n})
	}
	g := core.MustGraph(n, edges)
	assert.True(t, bipartite.IsBipartite(g, g.Vertices()))

	// a chord between vertices at even distance closes an odd cycle
	g2 := core.MustGraph(n, append(edges, core.Edge{U: 0, V: 2}))
	assert.False(t, bipartite.IsBipartite(g2, g2.Vertices()))
}

// TestBipartition checks the color classes of a connected bipartite set.
func TestBipartition(t *testing.T) {
	g := wheel5()

	s0, s1 := bipartite.Bipartition(g, vset.New(0, 1, 2, 3))
	assert.Equal(t, []int{0, 2}, s0.Members())
	assert.Equal(t, []int{1, 3}, s1.Members())

	s0, s1 = bipartite.Bipartition(g, vset.New(5, 4, 2))
	assert.Equal(t, []int{2, 4}, s0.Members())
	assert.Equal(t, []int{5}, s1.Members())

	s0, s1 = bipartite.Bipartition(g, vset.Set{})
	assert.True(t, s0.IsEmpty())
	assert.True(t, s1.IsEmpty())

	// every induced edge crosses the partition
	set := vset.New(0, 1, 2, 3)
	s0, s1 = bipartite.Bipartition(g, set)
	for _, e := range g.Induced(set) {
		assert.NotEqual(t, s0.Has(e.U), s0.Has(e.V), "edge %v inside one side", e)
	}
	assert.True(t, s0.Union(s1).Equal(set))
}
