package mcbs

import (
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/revsearch"
	"github.com/katalvlaran/bipenum/vset"
)

// Enumerate lists every maximal connected bipartite induced subgraph of g.
//
// Returns the solutions in discovery order, the identity → index map and the
// discovery edges. On error the partial Result gathered so far is returned
// alongside it (nil if the run never started).
func Enumerate(g *core.Graph, opts ...Option) (*Result, error) {
	e, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return e.Enumerate()
}

// Enumerate runs the traversal with the options e was created with.
func (e *Enumerator) Enumerate() (*Result, error) {
	search := make([]revsearch.Option, 0, len(e.opts.Search)+2)
	search = append(search, e.opts.Search...)
	if fn := e.opts.OnSolution; fn != nil {
		search = append(search, revsearch.WithOnEmit(func(idx, _ int, key string) error {
			return fn(idx, vset.Identity(key).Set())
		}))
	}
	if fn := e.opts.OnDuplicate; fn != nil {
		search = append(search, revsearch.WithOnDuplicate(func(parent, child int, key string) error {
			return fn(parent, child, vset.Identity(key).Set())
		}))
	}

	res, err := revsearch.Traverse[vset.Set](e, search...)
	if res == nil {
		return nil, err
	}

	out := &Result{
		Solutions:  res.Solutions,
		Index:      make(map[vset.Identity]int, len(res.Solutions)),
		Edges:      res.Edges,
		Count:      res.Count,
		Expansions: res.Expansions,
		Truncated:  res.Truncated,
	}
	for i, s := range res.Solutions {
		out.Index[s.Identity()] = i
	}

	return out, err
}
