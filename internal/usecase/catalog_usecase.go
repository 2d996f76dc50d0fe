package usecase

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CatalogUsecase serves the effective catalog: the persisted override when one
// exists, the seed otherwise. The first mutation copies the seed into the override.
type CatalogUsecase interface {
	Init(ctx context.Context) error

	List(ctx context.Context) ([]entity.Product, error)
	Source(ctx context.Context) (entity.CatalogSource, error)
	GetByID(ctx context.Context, id int64) (entity.Product, bool, error)

	Add(ctx context.Context, fields entity.ProductFields) (entity.Product, error)
	// Update and Remove report whether the product existed.
	Update(ctx context.Context, id int64, fields entity.ProductFields) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)

	Search(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	Categories() []entity.Category
}
