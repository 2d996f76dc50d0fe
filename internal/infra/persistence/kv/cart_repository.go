package kv

import (
	"context"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/persistence/model"
)

type cartRepository struct {
	store kvstore.Store
}

// NewCartRepository stores the cart items under the "cart" record.
func NewCartRepository(store kvstore.Store) repository.CartRepository {
	return &cartRepository{store: store}
}

// Load returns the stored cart with its invariants re-established.
func (repo *cartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	var records []model.CartItemModel
	if err := loadRecord(ctx, repo.store, model.CartKey, &records); err != nil {
		return nil, err
	}

	cart := &entity.Cart{Items: toCartItemsDomain(records)}
	cart.Normalize()

	return cart, nil
}

func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	var items []entity.CartItem
	if cart != nil {
		items = cart.Items
	}

	return saveRecord(ctx, repo.store, model.CartKey, fromCartItemsDomain(items))
}
