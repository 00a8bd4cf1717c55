package dsu

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the panic value (wrapped) for an index outside [0,n).
var ErrOutOfRange = errors.New("dsu: index out of range")

// DSU is a union-find forest. The zero value is an empty forest; use New.
type DSU struct {
	parent []int
	rank   []int
	count  []int // class size, valid at roots only
}

// New creates n mutually disjoint singleton classes.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.count[i] = 1
	}

	return d
}

// Len returns the size of the universe.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of x's class.
// Iterative with path halving, so no recursion depth concerns.
func (d *DSU) Find(x int) int {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent)))
	}
	for d.parent[x] != x {
		// point x at its grandparent
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Unite merges the classes containing x and y.
// It returns true iff they were previously distinct.
func (d *DSU) Unite(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// attach the lower-rank root under the higher-rank one
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.count[rx] += d.count[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}

	return true
}

// Same reports whether x and y belong to the same class.
func (d *DSU) Same(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Count returns the size of x's class.
func (d *DSU) Count(x int) int {
	return d.count[d.Find(x)]
}

// Sets returns every class as an ascending slice; classes are ordered by
// their smallest member.
func (d *DSU) Sets() [][]int {
	byRoot := make(map[int]int, len(d.parent))
	var out [][]int
	for x := range d.parent {
		r := d.Find(x)
		i, ok := byRoot[r]
		if !ok {
			i = len(out)
			byRoot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}
