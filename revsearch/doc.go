// Package revsearch drives a reverse-search enumeration: a depth-first walk
// over the implicit graph whose vertices are the solutions of a Problem and
// whose arcs are produced lazily by Problem.Neighbors.
//
// What
//
//   - Traverse starts from Problem.Start, assigns each distinct solution a
//     dense index in discovery order (via an index.Index keyed by
//     Problem.Identity), and records one Edge per neighbor probe:
//     a TreeEdge when the probe discovered a new solution, a CrossEdge when
//     it hit a known one.
//   - A newly discovered solution is expanded completely before the next
//     candidate of its parent is examined, exactly as the recursive
//     formulation would do. The recursion is held in an explicit heap stack
//     (gods arraystack), so deep discovery chains never grow the goroutine
//     stack.
//
// Every solution moves through three states: unvisited (no index yet),
// frontier (indexed, on the stack, candidates pending) and closed (all
// candidates examined, popped).
//
// Completeness is a property of the Problem, not of this package: every
// solution reachable from Start through Neighbors is discovered exactly once.
//
// Emission order
//
//   - DiscoveryOrder: OnEmit fires when a solution is discovered.
//   - AlternatingOrder: solutions at even depth are emitted on discovery,
//     solutions at odd depth when they are closed (alternating output).
//     Any delay bound this yields depends on the cost of Problem.Neighbors;
//     the package itself promises none.
//
// Options
//
//   - WithContext(ctx):           cancellation, checked once per step.
//   - WithIndex(x):               external discovery index (caller closes it).
//   - WithEmitOrder(o):           DiscoveryOrder (default) or AlternatingOrder.
//   - WithMaxSolutions(k):        stop after k discoveries; Result.Truncated.
//   - WithDiscardSolutions():     keep edges and counts only.
//   - WithOnDiscover / WithOnDuplicate / WithOnClose / WithOnEmit: hooks;
//     a hook error aborts the traversal and is returned wrapped.
//
// Errors
//
//   - ErrNilProblem, ErrOptionViolation
//   - wrapped Start/Neighbors/index/hook errors, ctx.Err()
package revsearch
