// Package kvstore is the durable key-value store scoped to one browsing client.
// Every record lives under "<namespace>_<key>" so several clients can share a bucket.
package kvstore

import (
	"context"
	"log/slog"
	"strings"

	"furnishop/config"
	"furnishop/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ErrKeyNotFound is returned by Get for a key that was never written or has been deleted.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is a flat string-keyed byte store. Values are opaque to it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type blobStore struct {
	bucket    *blob.Bucket
	namespace string
}

// NewBlobStore wraps an opened bucket. The store takes ownership of the bucket.
func NewBlobStore(bucket *blob.Bucket, namespace string) Store {
	return &blobStore{
		bucket:    bucket,
		namespace: strings.TrimSpace(namespace),
	}
}

// Open opens the bucket selected by the store config.
func Open(cfg config.StoreConfig) (Store, error) {
	var (
		bucket *blob.Bucket
		err    error
	)

	switch cfg.Driver {
	case config.StoreDriverMem:
		bucket = memblob.OpenBucket(nil)
	case config.StoreDriverFile, "":
		bucket, err = fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "open file store at %s", cfg.Dir)
		}
	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}

	return NewBlobStore(bucket, cfg.Namespace), nil
}

func (s *blobStore) key(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + "_" + key
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.key(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %s", s.key(key))
	}

	return data, nil
}

func (s *blobStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, s.key(key), value, &blob.WriterOptions{
		ContentType: "application/json",
	})

	return errors.Wrapf(err, "write %s", s.key(key))
}

// Delete removes key. Deleting a missing key succeeds.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.key(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", s.key(key))
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store and closes it when the application stops.
func New(params Params) (Store, error) {
	store, err := Open(params.Config.Store)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Durable store opened",
		slog.String("driver", params.Config.Store.Driver),
		slog.String("namespace", params.Config.Store.Namespace),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
