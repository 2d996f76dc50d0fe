package repository

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CatalogRepository persists the admin override of the product catalog.
// The seed catalog is not stored here; it ships with the binary.
type CatalogRepository interface {
	// LoadOverride returns the override list, or ErrRecordNotFound before the first admin edit.
	LoadOverride(ctx context.Context) ([]entity.Product, error)

	// SaveOverride replaces the whole override list.
	SaveOverride(ctx context.Context, products []entity.Product) error
}
