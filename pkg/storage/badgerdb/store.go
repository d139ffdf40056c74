// Package badgerdb implements storage on a badger key/value database.
//
// It trades the file-per-object layout of localfs for a single
// embedded LSM store, which suits catalogs with many small descriptors.
package badgerdb

import (
	"bytes"
	"context"
	"io"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/quiltlabs/quilt/pkg/storage"
)

func rewriteError(err error) error {
	switch err {
	case badger.ErrKeyNotFound:
		return storage.ErrNotFound
	case badger.ErrEmptyKey:
		return storage.ErrNotFound
	default:
		return err
	}
}

// New opens (or creates) a badger database at dir and wraps it as a
// storage.Store. Close must be called to release the lock file.
func New(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{dir: dir, db: db}, nil
}

// NewInMemory opens a transient in-memory badger database, for tests
func NewInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{dir: ":memory:", db: db}, nil
}

// BadgerStore is a storage.Store on a badger database
type BadgerStore struct {
	dir   string
	db    *badger.DB
	close sync.Once
}

var _ storage.Store = &BadgerStore{}

// Close the underlying database. Safe to call more than once.
func (b *BadgerStore) Close() error {
	var err error
	b.close.Do(func() {
		err = b.db.Close()
	})
	return err
}

func (b *BadgerStore) String() string {
	return "badger@" + b.dir
}

func (b *BadgerStore) Has(ctx context.Context, key string) (bool, error) {
	err := b.db.View(func(txn *badger.Txn) error {
		_, e := txn.Get([]byte(key))
		return e
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, rewriteError(err)
	}
	return true, nil
}

func (b *BadgerStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, e := txn.Get([]byte(key))
		if e != nil {
			return e
		}
		value, e = item.ValueCopy(nil)
		return e
	})
	if err != nil {
		return nil, rewriteError(err)
	}
	return io.NopCloser(bytes.NewReader(value)), nil
}

func (b *BadgerStore) Put(ctx context.Context, key string, source io.Reader, mode storage.WriteMode) error {
	value, err := io.ReadAll(source)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if mode == storage.IfNotPresent {
			if _, e := txn.Get([]byte(key)); e == nil {
				return storage.ErrExists
			} else if e != badger.ErrKeyNotFound {
				return rewriteError(e)
			}
		}
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerStore) Delete(ctx context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return rewriteError(txn.Delete([]byte(key)))
	})
}

func (b *BadgerStore) Keys(ctx context.Context) ([]string, error) {
	return b.KeysPrefix(ctx, "")
}

func (b *BadgerStore) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	var res []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			res = append(res, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
