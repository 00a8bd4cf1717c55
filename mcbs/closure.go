package mcbs

import (
	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// Enumerator is the maximal connected bipartite subgraph problem over one
// graph. It implements revsearch.Problem[vset.Set].
type Enumerator struct {
	g    *core.Graph
	opts Options
}

// New returns an Enumerator over g.
func New(g *core.Graph, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Enumerator{g: g, opts: o}, nil
}

// Graph returns the graph being enumerated.
func (e *Enumerator) Graph() *core.Graph { return e.g }

// Closure grows seed into a locally maximal connected bipartite superset.
//
// The result is a solution whenever seed is empty or itself connected and
// bipartite; for any other seed no vertex is admissible and seed comes back
// unchanged. seed is not modified.
func (e *Enumerator) Closure(seed vset.Set) vset.Set {
	work := seed.Clone()
	connected := bfs.IsConnected(e.g, work)

	n := e.g.Order()
	for v := 0; v < n; {
		if work.Has(v) || !e.admissible(work, v, connected) {
			v++
			continue
		}
		work.Add(v)
		// every kept addition leaves the set connected
		connected = true
		v = 0
	}
	e.opts.OnClosure(seed, work)

	return work
}

// admissible reports whether work ∪ {v} is connected and bipartite.
func (e *Enumerator) admissible(work vset.Set, v int, connected bool) bool {
	if e.g.HasLoop(v) {
		return false
	}
	grown := work.Clone()
	grown.Add(v)

	if connected {
		// a connected set stays connected iff v touches it
		if !work.IsEmpty() && !e.g.AdjacentTo(v, work) {
			return false
		}
	} else if !bfs.IsConnected(e.g, grown) {
		return false
	}

	return bipartite.IsBipartite(e.g, grown)
}

// Start returns Closure(∅), the first solution of the traversal.
func (e *Enumerator) Start() (vset.Set, error) {
	return e.Closure(vset.Set{}), nil
}

// Identity returns the canonical key of s.
func (e *Enumerator) Identity(s vset.Set) string {
	return string(s.Identity())
}
