package mcbs

import (
	"errors"

	"github.com/katalvlaran/bipenum/revsearch"
	"github.com/katalvlaran/bipenum/vset"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("mcbs: graph is nil")

	// ErrNotConnected reports a set whose induced subgraph is disconnected.
	ErrNotConnected = errors.New("mcbs: induced subgraph is not connected")

	// ErrNotBipartite reports a set whose induced subgraph has an odd cycle.
	ErrNotBipartite = errors.New("mcbs: induced subgraph is not bipartite")

	// ErrNotMaximal reports a set that some vertex can extend.
	ErrNotMaximal = errors.New("mcbs: set is not maximal")
)

// Option configures an Enumerator and the traversal run by Enumerate.
type Option func(*Options)

// Options holds diagnostic hooks and traversal settings.
type Options struct {
	// Search is forwarded to revsearch.Traverse by Enumerate.
	Search []revsearch.Option

	// OnClosure observes every closure: its seed and the resulting set.
	OnClosure func(seed, closed vset.Set)

	// OnBipartition observes the split of each expanded solution.
	OnBipartition func(s, side0, side1 vset.Set)

	// OnSolution fires once per solution in the configured emit order.
	OnSolution func(idx int, s vset.Set) error

	// OnDuplicate fires for every probe that rediscovers a known solution.
	OnDuplicate func(parent, child int, s vset.Set) error
}

// DefaultOptions returns no-op hooks and default traversal settings.
func DefaultOptions() Options {
	return Options{
		OnClosure:     func(vset.Set, vset.Set) {},
		OnBipartition: func(vset.Set, vset.Set, vset.Set) {},
	}
}

// WithSearchOptions forwards options to revsearch.Traverse.
func WithSearchOptions(opts ...revsearch.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithOnClosure registers a closure observer.
func WithOnClosure(fn func(seed, closed vset.Set)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClosure = fn
		}
	}
}

// WithOnBipartition registers a bipartition observer.
func WithOnBipartition(fn func(s, side0, side1 vset.Set)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBipartition = fn
		}
	}
}

// WithOnSolution registers the solution output hook.
func WithOnSolution(fn func(idx int, s vset.Set) error) Option {
	return func(o *Options) { o.OnSolution = fn }
}

// WithOnDuplicate registers the duplicate-probe hook.
func WithOnDuplicate(fn func(parent, child int, s vset.Set) error) Option {
	return func(o *Options) { o.OnDuplicate = fn }
}

// Result is the full output of Enumerate.
type Result struct {
	// Solutions in discovery order; Solutions[i] has index i.
	Solutions []vset.Set
	// Index maps each solution's identity to its discovery index.
	Index map[vset.Identity]int
	// Edges lists every neighbor probe as (parent, child, kind).
	Edges []revsearch.Edge
	// Count is the number of distinct solutions.
	Count int
	// Expansions is the number of Neighbors calls.
	Expansions int
	// Truncated is set when a solution limit stopped the run.
	Truncated bool
}

// IndexOf returns the discovery index of s.
func (r *Result) IndexOf(s vset.Set) (int, bool) {
	idx, ok := r.Index[s.Identity()]

	return idx, ok
}
