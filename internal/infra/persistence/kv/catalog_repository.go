package kv

import (
	"context"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/persistence/model"
)

type catalogRepository struct {
	store kvstore.Store
}

// NewCatalogRepository stores the catalog override under the "products" record.
func NewCatalogRepository(store kvstore.Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (repo *catalogRepository) LoadOverride(ctx context.Context) ([]entity.Product, error) {
	var records []model.ProductModel
	if err := loadRecord(ctx, repo.store, model.CatalogKey, &records); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(records))
	for _, record := range records {
		products = append(products, toProductDomain(record))
	}

	return products, nil
}

func (repo *catalogRepository) SaveOverride(ctx context.Context, products []entity.Product) error {
	records := make([]model.ProductModel, 0, len(products))
	for _, product := range products {
		records = append(records, fromProductDomain(product))
	}

	return saveRecord(ctx, repo.store, model.CatalogKey, records)
}
