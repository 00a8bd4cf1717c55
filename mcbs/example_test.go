package mcbs_test

import (
	"fmt"

	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/mcbs"
	"github.com/katalvlaran/bipenum/vset"
)

// ExampleEnumerate lists the solutions of the reference graph in discovery
// order.
func ExampleEnumerate() {
	g := core.MustGraph(8, []core.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
		{U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7}, {U: 4, V: 7},
		{U: 2, V: 5}, {U: 1, V: 6}, {U: 0, V: 7},
	})
	res, err := mcbs.Enumerate(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, s := range res.Solutions {
		fmt.Println(i, s)
	}
	// Output:
	// 0 [0 1 4 5 6 7]
	// 1 [0 2 4 6 7]
	// 2 [1 2 4 5 6 7]
	// 3 [0 2 4 5 6]
	// 4 [0 3 4 5 6 7]
	// 5 [1 3 4 5 7]
	// 6 [2 3 4 5 6 7]
	// 7 [1 3 4 6]
	// 8 [1 3 5 6 7]
	// 9 [0 2 5 7]
}

// ExampleEnumerator_Closure grows a single edge of the 5-cycle.
func ExampleEnumerator_Closure() {
	g := core.MustGraph(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}})
	e, _ := mcbs.New(g)
	fmt.Println(e.Closure(vset.New(2, 3)))
	// Output: [0 1 2 3]
}
