// Package mockstorage provides a function-field mock of storage.Store
// for unit tests.
package mockstorage

import (
	"context"
	"io"

	"github.com/quiltlabs/quilt/pkg/storage"
)

// StoreMock implements storage.Store by delegating to its fields.
// Calls to an unset field fail with storage.ErrNotSupported.
type StoreMock struct {
	StringFunc     func() string
	HasFunc        func(ctx context.Context, key string) (bool, error)
	GetFunc        func(ctx context.Context, key string) (io.ReadCloser, error)
	PutFunc        func(ctx context.Context, key string, source io.Reader, mode storage.WriteMode) error
	DeleteFunc     func(ctx context.Context, key string) error
	KeysFunc       func(ctx context.Context) ([]string, error)
	KeysPrefixFunc func(ctx context.Context, prefix string) ([]string, error)
}

var _ storage.Store = &StoreMock{}

func (s *StoreMock) String() string {
	if s.StringFunc == nil {
		return "mock"
	}
	return s.StringFunc()
}

func (s *StoreMock) Has(ctx context.Context, key string) (bool, error) {
	if s.HasFunc == nil {
		return false, storage.ErrNotSupported
	}
	return s.HasFunc(ctx, key)
}

func (s *StoreMock) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.GetFunc == nil {
		return nil, storage.ErrNotSupported
	}
	return s.GetFunc(ctx, key)
}

func (s *StoreMock) Put(ctx context.Context, key string, source io.Reader, mode storage.WriteMode) error {
	if s.PutFunc == nil {
		return storage.ErrNotSupported
	}
	return s.PutFunc(ctx, key, source, mode)
}

func (s *StoreMock) Delete(ctx context.Context, key string) error {
	if s.DeleteFunc == nil {
		return storage.ErrNotSupported
	}
	return s.DeleteFunc(ctx, key)
}

func (s *StoreMock) Keys(ctx context.Context) ([]string, error) {
	if s.KeysFunc == nil {
		return nil, storage.ErrNotSupported
	}
	return s.KeysFunc(ctx)
}

func (s *StoreMock) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	if s.KeysPrefixFunc == nil {
		return nil, storage.ErrNotSupported
	}
	return s.KeysPrefixFunc(ctx, prefix)
}
