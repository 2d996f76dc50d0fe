package kv

import (
	"context"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/persistence/model"
)

type orderRepository struct {
	store kvstore.Store
}

// NewOrderRepository stores the order list, most recent first, under the "orders" record.
func NewOrderRepository(store kvstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) Load(ctx context.Context) ([]*entity.Order, error) {
	var records []model.OrderModel
	if err := loadRecord(ctx, repo.store, model.OrdersKey, &records); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, toOrderDomain(record))
	}

	return orders, nil
}

func (repo *orderRepository) Save(ctx context.Context, orders []*entity.Order) error {
	records := make([]model.OrderModel, 0, len(orders))
	for _, order := range orders {
		records = append(records, fromOrderDomain(order))
	}

	return saveRecord(ctx, repo.store, model.OrdersKey, records)
}
