package repository

import (
	"context"

	"furnishop/internal/domain/entity"
)

// SessionRepository persists the public view of the logged-in user.
type SessionRepository interface {
	// Load returns the persisted session, or ErrRecordNotFound when nobody is logged in.
	Load(ctx context.Context) (*entity.User, error)

	// Save replaces the persisted session.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes the persisted session. Deleting an absent session is not an error.
	Delete(ctx context.Context) error
}
