package impl

import (
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/errors"
)

// storageError marks a durable store failure so the delivery layer reports it as STORAGE_FAILED.
func storageError(err error, details string) error {
	return domainerrors.NewStorageError(errors.WithStack(err), details)
}
