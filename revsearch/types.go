package revsearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bipenum/index"
)

// Sentinel errors for traversal.
var (
	// ErrNilProblem is returned when Traverse receives a nil Problem.
	ErrNilProblem = errors.New("revsearch: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("revsearch: invalid option supplied")
)

// Problem is an enumeration problem over solutions of type S.
//
// Neighbors must be computable in time polynomial in the input, and for any
// two solutions S, S* some neighbor of S must be strictly closer to S*;
// that property is what makes Traverse complete.
type Problem[S any] interface {
	// Start returns one solution.
	Start() (S, error)

	// Neighbors returns candidate solutions adjacent to s; duplicates are allowed.
	Neighbors(s S) ([]S, error)

	// Identity returns the canonical key of s: equal solutions, equal keys.
	Identity(s S) string
}

// EdgeKind tags a discovery edge.
type EdgeKind uint8

const (
	// TreeEdge leads to a solution discovered by this probe.
	TreeEdge EdgeKind = iota
	// CrossEdge leads to a solution that was already known.
	CrossEdge
)

// String implements fmt.Stringer.
func (k EdgeKind) String() string {
	switch k {
	case TreeEdge:
		return "tree"
	case CrossEdge:
		return "cross"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// Edge records one neighbor probe from Parent to Child (discovery indices).
type Edge struct {
	Parent int
	Child  int
	Kind   EdgeKind
}

// EmitOrder selects when OnEmit fires.
type EmitOrder int

const (
	// DiscoveryOrder emits every solution when it is discovered.
	DiscoveryOrder EmitOrder = iota
	// AlternatingOrder emits even-depth solutions on discovery and odd-depth
	// solutions when they are closed.
	AlternatingOrder
)

// Option configures Traverse via functional arguments.
type Option func(*Options)

// Options holds traversal parameters and hooks. Hooks receive discovery
// indices and canonical keys; a non-nil error aborts the traversal.
type Options struct {
	Ctx          context.Context
	Index        index.Index
	Order        EmitOrder
	MaxSolutions int // 0 = unlimited
	Discard      bool

	// OnDiscover fires once per solution, when its index is assigned.
	OnDiscover func(idx, depth int, key string) error
	// OnDuplicate fires for every probe that hits a known solution.
	OnDuplicate func(parent, child int, key string) error
	// OnClose fires when all candidates of a solution have been examined.
	OnClose func(idx int) error
	// OnEmit fires once per solution according to Order.
	OnEmit func(idx, depth int, key string) error

	err error
}

// DefaultOptions returns background context, a fresh in-memory index,
// discovery-order emission, no limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Order:       DiscoveryOrder,
		OnDiscover:  func(int, int, string) error { return nil },
		OnDuplicate: func(int, int, string) error { return nil },
		OnClose:     func(int) error { return nil },
		OnEmit:      func(int, int, string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIndex uses x as the discovery index. x must be empty; the caller keeps
// ownership and closes it.
func WithIndex(x index.Index) Option {
	return func(o *Options) {
		if x != nil {
			o.Index = x
		}
	}
}

// WithEmitOrder selects the emission order.
func WithEmitOrder(order EmitOrder) Option {
	return func(o *Options) {
		switch order {
		case DiscoveryOrder, AlternatingOrder:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown emit order %d", ErrOptionViolation, order)
		}
	}
}

// WithMaxSolutions stops the traversal after k discoveries (k > 0);
// k == 0 means unlimited, k < 0 is an ErrOptionViolation.
func WithMaxSolutions(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSolutions cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxSolutions = k
	}
}

// WithDiscardSolutions stops Result.Solutions from retaining solution values.
func WithDiscardSolutions() Option {
	return func(o *Options) { o.Discard = true }
}

// WithOnDiscover registers a discovery hook.
func WithOnDiscover(fn func(idx, depth int, key string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnDuplicate registers a hook for probes that hit a known solution.
func WithOnDuplicate(fn func(parent, child int, key string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDuplicate = fn
		}
	}
}

// WithOnClose registers a hook fired when a solution is fully expanded.
func WithOnClose(fn func(idx int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}

// WithOnEmit registers the output hook; see EmitOrder.
func WithOnEmit(fn func(idx, depth int, key string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEmit = fn
		}
	}
}

// Result is the outcome of a traversal.
type Result[S any] struct {
	// Solutions in discovery order: Solutions[i] has index i.
	// Nil when WithDiscardSolutions is set.
	Solutions []S
	// Edges in probe order.
	Edges []Edge
	// Count of distinct solutions discovered.
	Count int
	// Expansions is the number of Neighbors calls.
	Expansions int
	// MaxDepth is the deepest discovery-tree level reached (root = 0).
	MaxDepth int
	// Truncated is set when WithMaxSolutions stopped the traversal early.
	Truncated bool
}

// Parents returns, for every discovered index, the index of the solution
// that discovered it; the root maps to -1.
func (r *Result[S]) Parents() []int {
	parents := make([]int, r.Count)
	for i := range parents {
		parents[i] = -1
	}
	for _, e := range r.Edges {
		if e.Kind == TreeEdge {
			parents[e.Child] = e.Parent
		}
	}

	return parents
}
