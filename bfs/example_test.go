package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// ExampleComponent extracts the piece of a vertex set that is reachable from
// a given vertex inside the induced subgraph of a 6-cycle.
func ExampleComponent() {
	g := core.MustGraph(6, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 0}})

	// dropping 2 and 5 splits the cycle into {0,1} and {3,4}
	set := vset.New(0, 1, 3, 4)
	left, _ := bfs.Component(g, set, 1)
	right, _ := bfs.Component(g, set, 4)

	fmt.Println(left, right)
	fmt.Println(bfs.IsConnected(g, set), bfs.IsConnected(g, left))
	// Output:
	// [0 1] [3 4]
	// false true
}
