// Package kv implements the repositories on top of the durable key-value store.
// Every collection is one JSON record that is read and rewritten as a whole.
package kv

import (
	"context"
	"encoding/json"

	"furnishop/internal/domain/repository"
	"furnishop/internal/errors"
	"furnishop/internal/infra/kvstore"
)

func loadRecord(ctx context.Context, store kvstore.Store, key string, out any) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return repository.ErrRecordNotFound
		}

		return errors.Wrapf(err, "failed to load %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", key)
	}

	return nil
}

func saveRecord(ctx context.Context, store kvstore.Store, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return errors.Wrapf(store.Put(ctx, key, data), "failed to save %s", key)
}
