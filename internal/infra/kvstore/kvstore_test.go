package kvstore

import (
	"context"
	"testing"

	"furnishop/config"
	"furnishop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestStore_RoundTrip(t *testing.T) {
	drivers := []struct {
		name string
		cfg  config.StoreConfig
	}{
		{name: "mem", cfg: config.StoreConfig{Driver: config.StoreDriverMem, Namespace: "furnishop"}},
		{name: "file", cfg: config.StoreConfig{Driver: config.StoreDriverFile, Dir: t.TempDir(), Namespace: "furnishop"}},
	}

	for _, d := range drivers {
		t.Run(d.name, func(t *testing.T) {
			ctx := context.Background()
			store, err := Open(d.cfg)
			require.NoError(t, err)
			defer store.Close()

			_, err = store.Get(ctx, "cart")
			assert.True(t, errors.Is(err, ErrKeyNotFound))

			require.NoError(t, store.Put(ctx, "cart", []byte(`{"items":[]}`)))
			got, err := store.Get(ctx, "cart")
			require.NoError(t, err)
			assert.JSONEq(t, `{"items":[]}`, string(got))

			require.NoError(t, store.Put(ctx, "cart", []byte(`{"items":null}`)))
			got, err = store.Get(ctx, "cart")
			require.NoError(t, err)
			assert.JSONEq(t, `{"items":null}`, string(got))

			require.NoError(t, store.Delete(ctx, "cart"))
			_, err = store.Get(ctx, "cart")
			assert.True(t, errors.Is(err, ErrKeyNotFound))

			// deleting twice is fine
			assert.NoError(t, store.Delete(ctx, "cart"))
		})
	}
}

func TestStore_FilePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{Driver: config.StoreDriverFile, Dir: t.TempDir(), Namespace: "furnishop"}

	store, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "orders", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	a := NewBlobStore(bucket, "alice")
	b := NewBlobStore(bucket, "bob")

	require.NoError(t, a.Put(ctx, "user", []byte(`{"id":1}`)))

	_, err := b.Get(ctx, "user")
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	exists, err := bucket.Exists(ctx, "alice_user")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.StoreConfig{Driver: "redis"})
	assert.Error(t, err)
}
