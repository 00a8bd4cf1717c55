package mcbs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/mcbs"
	"github.com/katalvlaran/bipenum/vset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnumerator(t *testing.T, g *core.Graph, opts ...mcbs.Option) *mcbs.Enumerator {
	t.Helper()
	e, err := mcbs.New(g, opts...)
	require.NoError(t, err)
	return e
}

// TestClosure_Start verifies the deterministic first solution.
func TestClosure_Start(t *testing.T) {
	e := newEnumerator(t, fixture())
	start, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 5, 6, 7}, start.Members())
	assert.NoError(t, mcbs.Verify(fixture(), start))
}

// TestClosure_FromEdge grows {0,1} into a definite maximal superset.
func TestClosure_FromEdge(t *testing.T) {
	g := fixture()
	e := newEnumerator(t, g)
	seed := vset.New(0, 1)
	got := e.Closure(seed)

	assert.Equal(t, []int{0, 1, 4, 5, 6, 7}, got.Members())
	assert.True(t, seed.SubsetOf(got))
	assert.Equal(t, []int{0, 1}, seed.Members(), "seed must not be modified")
	assert.NoError(t, mcbs.Verify(g, got))
}

// TestClosure_Idempotent verifies close(S) == S for every solution.
func TestClosure_Idempotent(t *testing.T) {
	g := fixture()
	e := newEnumerator(t, g)
	for _, m := range fixtureSolutions {
		s := vset.New(m...)
		assert.True(t, e.Closure(s).Equal(s), "closure moved %v", m)
	}
}

// TestClosure_ValidSeedsReachMaximal closes every connected bipartite seed
// of the fixture and checks the result is a maximal superset.
func TestClosure_ValidSeedsReachMaximal(t *testing.T) {
	g := fixture()
	e := newEnumerator(t, g)
	for mask := 0; mask < 1<<8; mask++ {
		var seed vset.Set
		for v := 0; v < 8; v++ {
			if mask&(1<<v) != 0 {
				seed.Add(v)
			}
		}
		if !validPartial(g, seed) {
			continue
		}
		got := e.Closure(seed)
		require.NoErrorf(t, mcbs.Verify(g, got), "seed %v", seed)
		require.Truef(t, seed.SubsetOf(got), "seed %v not kept", seed)
	}
}

// validPartial reports whether s is connected and bipartite (maximal or not).
func validPartial(g *core.Graph, s vset.Set) bool {
	err := mcbs.Verify(g, s)
	return err == nil || errors.Is(err, mcbs.ErrNotMaximal)
}

// TestClosure_InvalidSeed returns a non-bipartite seed unchanged.
func TestClosure_InvalidSeed(t *testing.T) {
	e := newEnumerator(t, fixture())
	triangle := vset.New(0, 1, 2)
	assert.True(t, e.Closure(triangle).Equal(triangle))
}

// TestClosure_DisconnectedSeed joins a split seed through a bridging vertex.
func TestClosure_DisconnectedSeed(t *testing.T) {
	// 0-1-2, seed {0,2}
	g := core.MustGraph(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	e := newEnumerator(t, g)
	assert.Equal(t, []int{0, 1, 2}, e.Closure(vset.New(0, 2)).Members())
}

// TestClosure_SkipsLoops never adds a looped vertex.
func TestClosure_SkipsLoops(t *testing.T) {
	g := core.MustGraph(3, []core.Edge{{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 2}}, core.WithLoops())
	e := newEnumerator(t, g)
	assert.Equal(t, []int{1, 2}, e.Closure(vset.Set{}).Members())
}

// TestClosure_Observer reports each closure to the hook.
func TestClosure_Observer(t *testing.T) {
	var seeds, results []string
	e := newEnumerator(t, fixture(), mcbs.WithOnClosure(func(seed, closed vset.Set) {
		seeds = append(seeds, seed.String())
		results = append(results, closed.String())
	}))
	e.Closure(vset.New(3))
	require.Len(t, seeds, 1)
	assert.Equal(t, "[3]", seeds[0])
	assert.Equal(t, e.Closure(vset.New(3)).String(), results[0])
}

// TestNew_NilGraph rejects a nil graph.
func TestNew_NilGraph(t *testing.T) {
	_, err := mcbs.New(nil)
	assert.ErrorIs(t, err, mcbs.ErrGraphNil)
}
