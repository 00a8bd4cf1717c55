// Package vset provides compact bitset-backed vertex sets over the integer
// vertex space 0..n-1 used by every other package of bipenum.
//
// What
//
//   - Set: a growable bitset with O(1) membership and word-parallel
//     union, difference and intersection.
//   - Identity: the canonical key of a Set. Two sets with the same members
//     always produce byte-identical identities, independent of insertion
//     order or backing capacity, so identities are safe as map keys and as
//     storage keys.
//
// Determinism
//
//	Members, Next and String always walk vertices in ascending order.
//
// Complexity (n = largest vertex + 1, w = 64)
//
//   - Add/Remove/Has: O(1) amortized
//   - Len, Union, Difference, Intersect, Equal, Identity: O(n/w)
//   - Members: O(n/w + |S|)
//
// Negative vertex IDs are programming errors and panic.
package vset
