package repository

import (
	"context"

	"furnishop/internal/domain/entity"
)

// OrderRepository persists the order history, most recent first.
type OrderRepository interface {
	// Load returns every stored order, or ErrRecordNotFound if no order was ever placed.
	Load(ctx context.Context) ([]*entity.Order, error)

	// Save replaces the whole order list.
	Save(ctx context.Context, orders []*entity.Order) error
}
