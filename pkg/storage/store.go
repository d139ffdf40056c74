// Package storage defines the key/value object store backing a catalog.
//
// Implementations are assumed to be simple: keys are slash-separated
// paths, values are opaque byte streams. The catalog builds its archive
// layout (axes, commits, tags, patch blobs) on top of this interface.
package storage

import (
	"context"
	"io"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	// ErrNotFound indicates the key has no value in this store
	ErrNotFound errString = "not found"

	// ErrExists indicates an exclusive Put found the key already present
	ErrExists errString = "exists already"

	// ErrNotSupported indicates the operation is not available on this backend
	ErrNotSupported errString = "not supported"
)

// WriteMode controls how Put behaves on an existing key
type WriteMode bool

const (
	// OverWrite replaces any previous value
	OverWrite WriteMode = false

	// IfNotPresent makes Put fail with ErrExists when the key exists
	IfNotPresent WriteMode = true
)

// Store implementations persist keyed byte streams.
//
// Typically something file system-like: a local directory, a KV
// database, an object bucket.
type Store interface {
	String() string
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, source io.Reader, mode WriteMode) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	KeysPrefix(ctx context.Context, prefix string) ([]string, error)
}

// PipeIO copies a stream with a fixed intermediate buffer
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	buf := make([]byte, 32*1024)
	return io.CopyBuffer(writer, reader, buf)
}
