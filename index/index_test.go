package index_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/bipenum/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations returns a fresh instance of every Index implementation.
func implementations(t *testing.T) map[string]index.Index {
	t.Helper()
	mem, err := index.OpenBadger(index.BadgerOptions{InMemory: true})
	require.NoError(t, err)
	disk, err := index.OpenBadger(index.BadgerOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	return map[string]index.Index{
		"memory":          index.NewMemory(),
		"badger-inmemory": mem,
		"badger-disk":     disk,
	}
}

// TestIndex_AssignDense verifies dense, first-come indices and idempotent
// re-assignment, including the empty key.
func TestIndex_AssignDense(t *testing.T) {
	for name, x := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			defer x.Close()

			keys := []string{"\x03", "", "\x05\x00\x00\x00\x00\x00\x00\x00\x01", "\x03", ""}
			wantIdx := []int{0, 1, 2, 0, 1}
			wantFresh := []bool{true, true, true, false, false}
			for i, k := range keys {
				idx, fresh, err := x.Assign(k)
				require.NoError(t, err)
				assert.Equalf(t, wantIdx[i], idx, "key #%d", i)
				assert.Equalf(t, wantFresh[i], fresh, "key #%d", i)
			}
			assert.Equal(t, 3, x.Len())

			idx, ok, err := x.Lookup("")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 1, idx)

			_, ok, err = x.Lookup("missing")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 3, x.Len(), "Lookup must not assign")
		})
	}
}

// TestIndex_Each collects all entries and checks early termination.
func TestIndex_Each(t *testing.T) {
	for name, x := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			defer x.Close()
			for _, k := range []string{"a", "b", "c"} {
				_, _, err := x.Assign(k)
				require.NoError(t, err)
			}

			var got []int
			require.NoError(t, x.Each(func(key string, idx int) error {
				got = append(got, idx)
				return nil
			}))
			sort.Ints(got)
			assert.Equal(t, []int{0, 1, 2}, got)

			stop := errors.New("stop")
			calls := 0
			err := x.Each(func(string, int) error {
				calls++
				return stop
			})
			assert.ErrorIs(t, err, stop)
			assert.Equal(t, 1, calls)
		})
	}
}

// TestIndex_Closed verifies operations fail after Close.
func TestIndex_Closed(t *testing.T) {
	for name, x := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, x.Close())
			_, _, err := x.Assign("k")
			assert.ErrorIs(t, err, index.ErrClosed)
			_, _, err = x.Lookup("k")
			assert.ErrorIs(t, err, index.ErrClosed)
			assert.ErrorIs(t, x.Each(func(string, int) error { return nil }), index.ErrClosed)
		})
	}
}

// TestOpenBadger_RequiresDir rejects an on-disk index without a directory.
func TestOpenBadger_RequiresDir(t *testing.T) {
	_, err := index.OpenBadger(index.BadgerOptions{})
	assert.Error(t, err)
}

// TestOpenBadger_Truncates verifies a reopened directory starts empty.
func TestOpenBadger_Truncates(t *testing.T) {
	dir := t.TempDir()
	x, err := index.OpenBadger(index.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	_, _, err = x.Assign("k")
	require.NoError(t, err)
	require.NoError(t, x.Close())

	y, err := index.OpenBadger(index.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	defer y.Close()
	_, ok, err := y.Lookup("k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, y.Len())
}
