package vset

import "encoding/binary"

// Identity is the canonical, comparable form of a Set: its words encoded
// little-endian with trailing zero words trimmed. The empty set maps to "".
//
// Identities order and compare by content, never by how the set was built,
// which makes them the hash key of the discovery index.
type Identity string

// Identity returns the canonical key of s.
func (s Set) Identity() Identity {
	n := len(s.words)
	for n > 0 && s.words[n-1] == 0 {
		n--
	}
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], s.words[i])
	}

	return Identity(buf)
}

// FromBytes rebuilds an Identity from its storage encoding.
// Trailing zero words are trimmed so the result is canonical.
func FromBytes(b []byte) Identity {
	return FromWords(decodeWords(b)).Identity()
}

// FromWords wraps raw bitset words as a Set (the slice is copied).
func FromWords(words []uint64) Set {
	return Set{words: append([]uint64(nil), words...)}
}

// Bytes returns the storage encoding of id.
func (id Identity) Bytes() []byte { return []byte(id) }

// Set decodes id back into a Set.
func (id Identity) Set() Set {
	return Set{words: decodeWords([]byte(id))}
}

// Members decodes id into its sorted vertex list.
func (id Identity) Members() []int { return id.Set().Members() }

// String renders id like Set.String.
func (id Identity) String() string { return id.Set().String() }

func decodeWords(b []byte) []uint64 {
	// tolerate a short tail by zero-padding it
	n := (len(b) + 7) / 8
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		var chunk [8]byte
		copy(chunk[:], b[i*8:])
		words[i] = binary.LittleEndian.Uint64(chunk[:])
	}

	return words
}
