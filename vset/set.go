// SPDX-License-Identifier: MIT
// Package: bipenum/vset
//
// set.go - bitset vertex set.
//
// Receivers:
//   - Mutators (Add, Remove) use pointer receivers; readers use value receivers
//     so results of set algebra can be queried without an intermediate variable.
//   - Set values share their backing words; call Clone before mutating a copy.

package vset

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// Set is a set of non-negative vertex IDs. The zero value is an empty set.
type Set struct {
	words []uint64
}

// New returns a set holding the given members.
func New(members ...int) Set {
	var s Set
	for _, v := range members {
		s.Add(v)
	}

	return s
}

// WithCapacity returns an empty set pre-sized for vertices 0..n-1.
func WithCapacity(n int) Set {
	if n < 0 {
		n = 0
	}

	return Set{words: make([]uint64, (n+wordMask)>>wordShift)}
}

// Range returns the set {0, 1, ..., n-1}.
func Range(n int) Set {
	s := WithCapacity(n)
	for v := 0; v < n; v++ {
		s.words[v>>wordShift] |= 1 << uint(v&wordMask)
	}

	return s
}

func checkVertex(v int) {
	if v < 0 {
		panic(fmt.Sprintf("vset: negative vertex %d", v))
	}
}

// Add inserts v. Adding a present vertex is a no-op.
func (s *Set) Add(v int) {
	checkVertex(v)
	w := v >> wordShift
	if w >= len(s.words) {
		grown := make([]uint64, w+1)
		copy(grown, s.words)
		s.words = grown
	}
	s.words[w] |= 1 << uint(v&wordMask)
}

// Remove deletes v. Removing an absent vertex is a no-op.
func (s *Set) Remove(v int) {
	checkVertex(v)
	w := v >> wordShift
	if w < len(s.words) {
		s.words[w] &^= 1 << uint(v&wordMask)
	}
}

// Has reports whether v is a member.
func (s Set) Has(v int) bool {
	if v < 0 {
		return false
	}
	w := v >> wordShift

	return w < len(s.words) && s.words[w]&(1<<uint(v&wordMask)) != 0
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Next returns the smallest member ≥ from, or -1 if there is none.
//
//	for v := s.Next(0); v >= 0; v = s.Next(v + 1) { ... }
func (s Set) Next(from int) int {
	if from < 0 {
		from = 0
	}
	w := from >> wordShift
	if w >= len(s.words) {
		return -1
	}
	// mask off bits below from in the first word
	cur := s.words[w] & (^uint64(0) << uint(from&wordMask))
	for {
		if cur != 0 {
			return w<<wordShift + bits.TrailingZeros64(cur)
		}
		w++
		if w >= len(s.words) {
			return -1
		}
		cur = s.words[w]
	}
}

// Min returns the smallest member; ok is false for an empty set.
func (s Set) Min() (v int, ok bool) {
	v = s.Next(0)

	return v, v >= 0
}

// Members returns all members in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		out = append(out, v)
	}

	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s.words == nil {
		return Set{}
	}
	words := make([]uint64, len(s.words))
	copy(words, s.words)

	return Set{words: words}
}

// Union returns s ∪ t as a new set.
func (s Set) Union(t Set) Set {
	long, short := s.words, t.words
	if len(short) > len(long) {
		long, short = short, long
	}
	out := make([]uint64, len(long))
	copy(out, long)
	for i, w := range short {
		out[i] |= w
	}

	return Set{words: out}
}

// Difference returns s \ t as a new set.
func (s Set) Difference(t Set) Set {
	out := make([]uint64, len(s.words))
	copy(out, s.words)
	for i := 0; i < len(out) && i < len(t.words); i++ {
		out[i] &^= t.words[i]
	}

	return Set{words: out}
}

// Intersect returns s ∩ t as a new set.
func (s Set) Intersect(t Set) Set {
	n := len(s.words)
	if len(t.words) < n {
		n = len(t.words)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = s.words[i] & t.words[i]
	}

	return Set{words: out}
}

// Intersects reports whether s and t share at least one member.
func (s Set) Intersects(t Set) bool {
	for i := 0; i < len(s.words) && i < len(t.words); i++ {
		if s.words[i]&t.words[i] != 0 {
			return true
		}
	}

	return false
}

// SubsetOf reports whether every member of s is in t.
func (s Set) SubsetOf(t Set) bool {
	for i, w := range s.words {
		var tw uint64
		if i < len(t.words) {
			tw = t.words[i]
		}
		if w&^tw != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether s and t have the same members; capacity is ignored.
func (s Set) Equal(t Set) bool {
	return s.Identity() == t.Identity()
}

// String renders the members as "[0 2 5]".
func (s Set) String() string {
	return formatMembers(s.Members(), 0)
}

// Format renders the members shifted by base, e.g. base 1 for 1-based labels.
func (s Set) Format(base int) string {
	return formatMembers(s.Members(), base)
}

func formatMembers(members []int, base int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range members {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v+base)
	}
	b.WriteByte(']')

	return b.String()
}
