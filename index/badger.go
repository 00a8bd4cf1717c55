package index

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// keyPrefix keeps every stored key non-empty; the empty solution has an
// empty canonical key, which badger rejects.
const keyPrefix = 's'

// BadgerOptions configures OpenBadger.
type BadgerOptions struct {
	// Dir is the on-disk location. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the LSM tree entirely in memory.
	InMemory bool
}

// Badger is an Index stored in a badger key-value store. Values are the
// big-endian uint64 discovery index.
type Badger struct {
	db  *badger.DB
	len int
}

// OpenBadger opens (and empties) a badger-backed index.
// An on-disk directory is truncated so every run starts from index 0.
func OpenBadger(opts BadgerOptions) (*Badger, error) {
	var dbOpts badger.Options
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Dir == "" {
			return nil, errors.New("index: badger Dir must be specified unless InMemory is set")
		}
		dbOpts = badger.DefaultOptions(opts.Dir)
	}
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "index: open badger")
	}
	if !opts.InMemory {
		if err = db.DropAll(); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "index: truncate badger")
		}
	}

	return &Badger{db: db}, nil
}

func storeKey(key string) []byte {
	buf := make([]byte, 0, len(key)+1)
	buf = append(buf, keyPrefix)

	return append(buf, key...)
}

func decodeIndex(val []byte) (int, error) {
	if len(val) != 8 {
		return 0, errors.Errorf("index: corrupt value of length %d", len(val))
	}

	return int(binary.BigEndian.Uint64(val)), nil
}

// Assign implements Index.
func (x *Badger) Assign(key string) (idx int, fresh bool, err error) {
	if x.db == nil {
		return 0, false, ErrClosed
	}
	txn := x.db.NewTransaction(true)
	defer txn.Discard()

	k := storeKey(key)
	item, err := txn.Get(k)
	switch {
	case err == nil:
		err = item.Value(func(val []byte) error {
			idx, err = decodeIndex(val)
			return err
		})
		return idx, false, errors.Wrap(err, "index: read")
	case err != badger.ErrKeyNotFound:
		return 0, false, errors.Wrap(err, "index: get")
	}

	var val [8]byte
	binary.BigEndian.PutUint64(val[:], uint64(x.len))
	if err = txn.Set(k, val[:]); err != nil {
		return 0, false, errors.Wrap(err, "index: set")
	}
	if err = txn.Commit(); err != nil {
		return 0, false, errors.Wrap(err, "index: commit")
	}
	idx = x.len
	x.len++

	return idx, true, nil
}

// Lookup implements Index.
func (x *Badger) Lookup(key string) (idx int, ok bool, err error) {
	if x.db == nil {
		return 0, false, ErrClosed
	}
	err = x.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return item.Value(func(val []byte) error {
			idx, err = decodeIndex(val)
			return err
		})
	})

	return idx, ok, errors.Wrap(err, "index: lookup")
}

// Len implements Index.
func (x *Badger) Len() int { return x.len }

// Each implements Index. Entries are visited in key order.
func (x *Badger) Each(fn func(key string, idx int) error) error {
	if x.db == nil {
		return ErrClosed
	}

	return x.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   64,
			Prefix:         []byte{keyPrefix},
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key()[1:])
			var idx int
			err := item.Value(func(val []byte) (err error) {
				idx, err = decodeIndex(val)
				return err
			})
			if err != nil {
				return errors.Wrap(err, "index: iterate")
			}
			if err = fn(key, idx); err != nil {
				return err
			}
		}

		return nil
	})
}

// Close implements Index.
func (x *Badger) Close() error {
	if x.db == nil {
		return nil
	}
	err := x.db.Close()
	x.db = nil

	return errors.Wrap(err, "index: close")
}
