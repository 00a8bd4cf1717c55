package mcbs

import (
	"fmt"

	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/vset"
)

// Neighbors derives the solutions adjacent to the solution s.
//
// For each v ∉ s in ascending order (looped vertices excepted) it yields the
// closures of two candidates, in this order:
//
//	A: (B0 ∪ (B1 \ N(v))) ∪ {v}   – v joins side 1
//	B: (B1 ∪ (B0 \ N(v))) ∪ {v}   – v joins side 0
//
// each first cut down to the component containing v. Duplicates are kept;
// deduplication is the driver's job.
func (e *Enumerator) Neighbors(s vset.Set) ([]vset.Set, error) {
	side0, side1 := bipartite.Bipartition(e.g, s)
	e.opts.OnBipartition(s, side0, side1)

	n := e.g.Order()
	out := make([]vset.Set, 0, 2*(n-s.Len()))
	for v := 0; v < n; v++ {
		if s.Has(v) || e.g.HasLoop(v) {
			continue
		}
		nv := e.g.NeighborsWithin(v, s)
		candidates := [2]vset.Set{
			side0.Union(side1.Difference(nv)),
			side1.Union(side0.Difference(nv)),
		}
		for _, cand := range candidates {
			cand.Add(v)
			comp, err := bfs.Component(e.g, cand, v)
			if err != nil {
				return nil, fmt.Errorf("mcbs: component of %d: %w", v, err)
			}
			out = append(out, e.Closure(comp))
		}
	}

	return out, nil
}
