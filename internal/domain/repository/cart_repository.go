package repository

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CartRepository persists the active cart.
type CartRepository interface {
	// Load returns the persisted cart, or ErrRecordNotFound if none was saved yet.
	Load(ctx context.Context) (*entity.Cart, error)

	// Save replaces the persisted cart.
	Save(ctx context.Context, cart *entity.Cart) error
}
