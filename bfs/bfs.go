package bfs

import (
	"fmt"

	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	within vset.Set
	opts   Options
	queue  []int
	seen   vset.Set
	res    *Result
}

// Walk runs breadth-first search on the subgraph of g induced by within,
// starting from start.
// Returns ErrGraphNil, ErrStartNotInSet, ErrOptionViolation or a wrapped
// OnVisit error.
func Walk(g *core.Graph, within vset.Set, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Order() || !within.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotInSet, start)
	}

	n := g.Order()
	w := &walker{
		graph:  g,
		within: within,
		opts:   o,
		queue:  make([]int, 0, within.Len()),
		seen:   vset.WithCapacity(n),
		res: &Result{
			Order:  make([]int, 0, within.Len()),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth, parent int) {
	w.seen.Add(v)
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[v]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		// unseen neighbors inside the induced subgraph, ascending
		frontier := w.graph.NeighborsWithin(v, w.within).Difference(w.seen)
		for u := frontier.Next(0); u >= 0; u = frontier.Next(u + 1) {
			if !w.opts.FilterNeighbor(v, u) {
				continue
			}
			w.enqueue(u, next, v)
		}
	}

	return nil
}

// Component returns the vertices of set reachable from v through edges
// whose both endpoints lie in set, v included.
//
// An empty set yields an empty result. A v outside a non-empty set is a
// caller contract violation and returns ErrStartNotInSet.
func Component(g *core.Graph, set vset.Set, v int) (vset.Set, error) {
	if g == nil {
		return vset.Set{}, ErrGraphNil
	}
	if set.IsEmpty() {
		return vset.Set{}, nil
	}
	res, err := Walk(g, set, v)
	if err != nil {
		return vset.Set{}, err
	}

	return vset.New(res.Order...), nil
}

// IsConnected reports whether set induces a connected subgraph of g.
// The empty set is vacuously connected.
func IsConnected(g *core.Graph, set vset.Set) bool {
	start, ok := set.Min()
	if !ok {
		return true
	}
	res, err := Walk(g, set, start)
	if err != nil {
		return false
	}

	return len(res.Order) == set.Len()
}
