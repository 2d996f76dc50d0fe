package repository

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CredentialRepository persists the account registry as a single record.
type CredentialRepository interface {
	// Load returns the full registry, or ErrRecordNotFound if it was never written.
	Load(ctx context.Context) ([]*entity.Credential, error)

	// Save replaces the whole registry.
	Save(ctx context.Context, credentials []*entity.Credential) error
}
