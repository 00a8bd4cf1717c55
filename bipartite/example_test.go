package bipartite_test

import (
	"fmt"

	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// ExampleBipartition two-colors a 4-cycle and rejects a triangle.
func ExampleBipartition() {
	g := core.MustGraph(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}, {U: 2, V: 4}, {U: 3, V: 4}})

	square := vset.New(0, 1, 2, 3)
	fmt.Println(bipartite.IsBipartite(g, square))
	fmt.Println(bipartite.Bipartition(g, square))
	fmt.Println(bipartite.IsBipartite(g, vset.New(2, 3, 4)))
	// Output:
	// true
	// [0 2] [1 3]
	// false
}
