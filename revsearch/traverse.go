package revsearch

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/bipenum/index"
)

// frame is one solution on the work stack (state: frontier).
type frame[S any] struct {
	sol      S
	key      string
	idx      int
	depth    int
	expanded bool
	cands    []S
	next     int
}

// driver encapsulates mutable traversal state.
type driver[S any] struct {
	p     Problem[S]
	opts  Options
	index index.Index
	stack *arraystack.Stack
	res   *Result[S]
}

// Traverse enumerates every solution of p reachable from p.Start().
//
// Steps:
//  1. Resolve options; default to a private in-memory index.
//  2. Discover the start solution (index 0, depth 0) and push it.
//  3. Repeatedly look at the top frame: expand it on first sight, then probe
//     its next candidate. A fresh candidate is discovered and pushed (so it is
//     expanded before its siblings); a known one records a CrossEdge.
//     A frame with no candidates left is closed and popped.
//  4. Stop when the stack is empty, the context is done, a hook fails, or
//     MaxSolutions is reached.
//
// The returned Result is non-nil whenever the traversal started, even if an
// error interrupted it; it then reflects the partial progress.
func Traverse[S any](p Problem[S], opts ...Option) (*Result[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d := &driver[S]{
		p:     p,
		opts:  o,
		index: o.Index,
		stack: arraystack.New(),
		res:   &Result[S]{},
	}
	if d.index == nil {
		d.index = index.NewMemory()
		defer d.index.Close()
	}

	start, err := p.Start()
	if err != nil {
		return nil, fmt.Errorf("revsearch: start: %w", err)
	}
	if _, err = d.discover(start, p.Identity(start), -1, 0); err != nil {
		return d.res, err
	}

	return d.res, d.loop()
}

// discover assigns an index to a fresh solution, records the tree edge from
// parent (unless root), fires hooks and pushes the frame.
// stop is true when MaxSolutions has been reached.
func (d *driver[S]) discover(sol S, key string, parent, depth int) (stop bool, err error) {
	idx, fresh, err := d.index.Assign(key)
	if err != nil {
		return false, fmt.Errorf("revsearch: index: %w", err)
	}
	if !fresh {
		// only possible for the root when a non-empty index was supplied
		return false, fmt.Errorf("%w: index already holds %q", ErrOptionViolation, key)
	}
	return d.push(sol, key, idx, parent, depth)
}

func (d *driver[S]) push(sol S, key string, idx, parent, depth int) (bool, error) {
	if parent >= 0 {
		d.res.Edges = append(d.res.Edges, Edge{Parent: parent, Child: idx, Kind: TreeEdge})
	}
	d.res.Count++
	if !d.opts.Discard {
		d.res.Solutions = append(d.res.Solutions, sol)
	}
	if depth > d.res.MaxDepth {
		d.res.MaxDepth = depth
	}
	if err := d.opts.OnDiscover(idx, depth, key); err != nil {
		return false, fmt.Errorf("revsearch: OnDiscover at %d: %w", idx, err)
	}
	if d.emitsOnDiscover(depth) {
		if err := d.opts.OnEmit(idx, depth, key); err != nil {
			return false, fmt.Errorf("revsearch: OnEmit at %d: %w", idx, err)
		}
	}
	d.stack.Push(&frame[S]{sol: sol, key: key, idx: idx, depth: depth})

	if d.opts.MaxSolutions > 0 && d.res.Count >= d.opts.MaxSolutions {
		d.res.Truncated = true
		return true, nil
	}

	return false, nil
}

func (d *driver[S]) emitsOnDiscover(depth int) bool {
	return d.opts.Order == DiscoveryOrder || depth%2 == 0
}

// loop runs until the stack drains or the traversal stops early.
func (d *driver[S]) loop() error {
	if d.res.Truncated {
		return d.flush()
	}
	for !d.stack.Empty() {
		select {
		case <-d.opts.Ctx.Done():
			return d.opts.Ctx.Err()
		default:
		}

		top, _ := d.stack.Peek()
		f := top.(*frame[S])

		if !f.expanded {
			cands, err := d.p.Neighbors(f.sol)
			if err != nil {
				return fmt.Errorf("revsearch: neighbors of %d: %w", f.idx, err)
			}
			f.cands, f.expanded = cands, true
			d.res.Expansions++
		}

		if f.next == len(f.cands) {
			d.stack.Pop()
			if err := d.close(f); err != nil {
				return err
			}
			continue
		}

		cand := f.cands[f.next]
		f.cands[f.next] = *new(S) // release the probed candidate
		f.next++

		key := d.p.Identity(cand)
		idx, fresh, err := d.index.Assign(key)
		if err != nil {
			return fmt.Errorf("revsearch: index: %w", err)
		}
		if !fresh {
			d.res.Edges = append(d.res.Edges, Edge{Parent: f.idx, Child: idx, Kind: CrossEdge})
			if err = d.opts.OnDuplicate(f.idx, idx, key); err != nil {
				return fmt.Errorf("revsearch: OnDuplicate at %d→%d: %w", f.idx, idx, err)
			}
			continue
		}
		stop, err := d.push(cand, key, idx, f.idx, f.depth+1)
		if err != nil {
			return err
		}
		if stop {
			return d.flush()
		}
	}

	return nil
}

// close fires the closing hooks for a fully expanded frame.
func (d *driver[S]) close(f *frame[S]) error {
	if err := d.opts.OnClose(f.idx); err != nil {
		return fmt.Errorf("revsearch: OnClose at %d: %w", f.idx, err)
	}
	if !d.emitsOnDiscover(f.depth) {
		if err := d.opts.OnEmit(f.idx, f.depth, f.key); err != nil {
			return fmt.Errorf("revsearch: OnEmit at %d: %w", f.idx, err)
		}
	}

	return nil
}

// flush emits the odd-depth solutions still waiting on the stack after a
// truncated traversal, innermost first, without closing them.
func (d *driver[S]) flush() error {
	for !d.stack.Empty() {
		top, _ := d.stack.Pop()
		f := top.(*frame[S])
		if d.emitsOnDiscover(f.depth) {
			continue
		}
		if err := d.opts.OnEmit(f.idx, f.depth, f.key); err != nil {
			return fmt.Errorf("revsearch: OnEmit at %d: %w", f.idx, err)
		}
	}

	return nil
}
