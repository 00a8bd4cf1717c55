// Package index provides the discovery index of a reverse-search run: a map
// from a solution's canonical key to the dense integer assigned when that
// solution was first discovered.
//
// Contract (Index):
//
//   - Assign(key) returns the existing index of key, or assigns Len() to it.
//     Indices start at 0, follow discovery order, and are never reassigned.
//   - Lookup(key) never assigns.
//   - Each visits every entry; order is implementation-defined.
//   - Close releases resources; the index is unusable afterwards.
//
// Implementations:
//
//   - Memory: a plain Go map; the default.
//   - Badger: an LSM-backed index (github.com/dgraph-io/badger/v3), either
//     in-memory or on disk. Use it when the solution family is too large to
//     keep every key on the Go heap.
//
// Single-writer: no implementation is safe for concurrent Assign calls.
package index
