package index

import "errors"

// ErrClosed is returned by operations on a closed index.
var ErrClosed = errors.New("index: closed")

// Index maps canonical solution keys to dense discovery indices.
type Index interface {
	// Assign returns key's index; fresh is true iff the index was assigned now.
	Assign(key string) (idx int, fresh bool, err error)

	// Lookup returns key's index without assigning one.
	Lookup(key string) (idx int, ok bool, err error)

	// Len returns the number of assigned indices.
	Len() int

	// Each calls fn for every entry until fn returns an error.
	Each(fn func(key string, idx int) error) error

	// Close releases resources held by the index.
	Close() error
}

// Memory is an Index backed by a Go map.
type Memory struct {
	m      map[string]int
	closed bool
}

// NewMemory returns an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]int)}
}

// Assign implements Index.
func (x *Memory) Assign(key string) (int, bool, error) {
	if x.closed {
		return 0, false, ErrClosed
	}
	if idx, ok := x.m[key]; ok {
		return idx, false, nil
	}
	idx := len(x.m)
	x.m[key] = idx

	return idx, true, nil
}

// Lookup implements Index.
func (x *Memory) Lookup(key string) (int, bool, error) {
	if x.closed {
		return 0, false, ErrClosed
	}
	idx, ok := x.m[key]

	return idx, ok, nil
}

// Len implements Index.
func (x *Memory) Len() int { return len(x.m) }

// Each implements Index.
func (x *Memory) Each(fn func(key string, idx int) error) error {
	if x.closed {
		return ErrClosed
	}
	for k, v := range x.m {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Index.
func (x *Memory) Close() error {
	x.closed = true
	x.m = nil

	return nil
}
