package mcbs

import (
	"fmt"

	"github.com/katalvlaran/bipenum/bfs"
	"github.com/katalvlaran/bipenum/bipartite"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/vset"
)

// Verify checks that s is a maximal connected bipartite vertex set of g.
//
// Errors (first failing check wins):
//   - core.ErrVertexOutOfRange: a member is not a vertex of g
//   - ErrNotConnected, ErrNotBipartite
//   - ErrNotMaximal, naming the smallest vertex that extends s
func Verify(g *core.Graph, s vset.Set) error {
	if g == nil {
		return ErrGraphNil
	}
	if !s.SubsetOf(g.Vertices()) {
		return fmt.Errorf("%w: %v has members outside [0,%d)", core.ErrVertexOutOfRange, s, g.Order())
	}
	if !bfs.IsConnected(g, s) {
		return fmt.Errorf("%w: %v", ErrNotConnected, s)
	}
	if !bipartite.IsBipartite(g, s) {
		return fmt.Errorf("%w: %v", ErrNotBipartite, s)
	}
	if v, ok := extender(g, s); ok {
		return fmt.Errorf("%w: %v extends by %d", ErrNotMaximal, s, v)
	}

	return nil
}

// IsMaximal reports whether no single vertex can be added to s while keeping
// it connected and bipartite. s itself is assumed valid.
func IsMaximal(g *core.Graph, s vset.Set) bool {
	_, ok := extender(g, s)

	return !ok
}

// extender returns the smallest v ∉ s with s ∪ {v} connected and bipartite.
func extender(g *core.Graph, s vset.Set) (int, bool) {
	for v := 0; v < g.Order(); v++ {
		if s.Has(v) {
			continue
		}
		grown := s.Clone()
		grown.Add(v)
		if bfs.IsConnected(g, grown) && bipartite.IsBipartite(g, grown) {
			return v, true
		}
	}

	return -1, false
}
