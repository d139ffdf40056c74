package badgerdb

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/quiltlabs/quilt/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.Put(ctx, "commits/sales/abc.yaml", bytes.NewReader([]byte("id: abc")), storage.OverWrite))

	has, err := store.Has(ctx, "commits/sales/abc.yaml")
	require.NoError(t, err)
	assert.True(t, has)

	rdr, err := store.Get(ctx, "commits/sales/abc.yaml")
	require.NoError(t, err)
	defer rdr.Close()
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "id: abc", string(b))
}

func TestPutIfNotPresent(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	require.NoError(t, store.Put(ctx, "tags/sales/latest.yaml", bytes.NewReader([]byte("v1")), storage.IfNotPresent))
	err := store.Put(ctx, "tags/sales/latest.yaml", bytes.NewReader([]byte("v2")), storage.IfNotPresent)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrExists)
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)
	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestKeysPrefix(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	for _, key := range []string{
		"axes/itm.yaml",
		"axes/lct.yaml",
		"commits/sales/one.yaml",
	} {
		require.NoError(t, store.Put(ctx, key, bytes.NewReader([]byte("x")), storage.OverWrite))
	}

	keys, err := store.KeysPrefix(ctx, "axes/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"axes/itm.yaml", "axes/lct.yaml"}, keys)

	all, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)
	require.NoError(t, store.Put(ctx, "a/b", bytes.NewReader([]byte("x")), storage.OverWrite))
	require.NoError(t, store.Delete(ctx, "a/b"))
	has, err := store.Has(ctx, "a/b")
	require.NoError(t, err)
	assert.False(t, has)
}
