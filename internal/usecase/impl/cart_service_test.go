package impl

import (
	"context"
	"math/rand/v2"
	"testing"

	"furnishop/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddSameProductTwiceMerges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	chair := env.product(t, 1)

	require.NoError(t, env.cart.AddToCart(ctx, chair))
	require.NoError(t, env.cart.AddToCart(ctx, chair))

	items := env.cart.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, env.cart.ItemCount(ctx))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantItems int
		wantCount int
	}{
		{name: "set", quantity: 4, wantItems: 1, wantCount: 4},
		{name: "one", quantity: 1, wantItems: 1, wantCount: 1},
		{name: "zero removes", quantity: 0, wantItems: 0, wantCount: 0},
		{name: "negative removes", quantity: -3, wantItems: 0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 2)))

			require.NoError(t, env.cart.UpdateQuantity(ctx, 2, tt.quantity))

			assert.Len(t, env.cart.Items(ctx), tt.wantItems)
			assert.Equal(t, tt.wantCount, env.cart.ItemCount(ctx))
		})
	}
}

func TestCartService_RemoveAndUpdateUnknownAreNoOps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))

	require.NoError(t, env.cart.RemoveFromCart(ctx, 999))
	require.NoError(t, env.cart.UpdateQuantity(ctx, 999, 5))

	items := env.cart.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	require.NoError(t, env.cart.RemoveFromCart(ctx, 1))
	assert.Empty(t, env.cart.Items(ctx))
}

func TestCartService_RemoveItems(t *testing.T) {
	tests := []struct {
		name      string
		remove    []entity.CartItem
		wantItems map[int64]int
	}{
		{
			name:      "whole line",
			remove:    []entity.CartItem{{Product: entity.Product{ID: 1}, Quantity: 3}},
			wantItems: map[int64]int{2: 1},
		},
		{
			name:      "part of a line",
			remove:    []entity.CartItem{{Product: entity.Product{ID: 1}, Quantity: 2}},
			wantItems: map[int64]int{1: 1, 2: 1},
		},
		{
			name:      "more than held",
			remove:    []entity.CartItem{{Product: entity.Product{ID: 2}, Quantity: 5}},
			wantItems: map[int64]int{1: 3},
		},
		{
			name:      "unknown product",
			remove:    []entity.CartItem{{Product: entity.Product{ID: 999}, Quantity: 1}},
			wantItems: map[int64]int{1: 3, 2: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))
			require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 2)))
			require.NoError(t, env.cart.UpdateQuantity(ctx, 1, 3))

			require.NoError(t, env.cart.RemoveItems(ctx, tt.remove))

			got := make(map[int64]int)
			for _, item := range env.cart.Items(ctx) {
				got[item.Product.ID] = item.Quantity
			}
			assert.Equal(t, tt.wantItems, got)

			reloaded := newTestEnvWith(t, env.store, env.seeds, false)
			assert.Equal(t, env.cart.Items(ctx), reloaded.cart.Items(ctx))
		})
	}
}

func TestCartService_InvariantHoldsUnderRandomOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	products, err := env.catalog.List(ctx)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(42, 7))
	for range 300 {
		p := products[rng.IntN(4)]
		switch rng.IntN(3) {
		case 0:
			require.NoError(t, env.cart.AddToCart(ctx, p))
		case 1:
			require.NoError(t, env.cart.UpdateQuantity(ctx, p.ID, rng.IntN(7)-3))
		default:
			require.NoError(t, env.cart.RemoveFromCart(ctx, p.ID))
		}

		items := env.cart.Items(ctx)
		seen := map[int64]bool{}
		sum := 0
		for _, item := range items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.False(t, seen[item.Product.ID], "duplicate line for product %d", item.Product.ID)
			seen[item.Product.ID] = true
			sum += item.Quantity
		}
		assert.Equal(t, sum, env.cart.ItemCount(ctx))
	}
}

func TestCartService_Pricing(t *testing.T) {
	tests := []struct {
		name         string
		productIDs   []int64
		wantSubtotal float64
		wantShipping float64
		wantTotal    float64
	}{
		// 599 + 349
		{name: "free shipping above threshold", productIDs: []int64{1, 2}, wantSubtotal: 948, wantShipping: 0, wantTotal: 948},
		// 199
		{name: "surcharge below threshold", productIDs: []int64{8}, wantSubtotal: 199, wantShipping: 49, wantTotal: 248},
		// 249 + 249 = 498
		{name: "surcharge just below", productIDs: []int64{5, 5}, wantSubtotal: 498, wantShipping: 49, wantTotal: 547},
		{name: "empty", wantSubtotal: 0, wantShipping: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			for _, id := range tt.productIDs {
				require.NoError(t, env.cart.AddToCart(ctx, env.product(t, id)))
			}

			summary := env.cart.Summary(ctx)
			assert.InDelta(t, tt.wantSubtotal, summary.Subtotal, 0.001)
			assert.InDelta(t, tt.wantSubtotal, env.cart.Subtotal(ctx), 0.001)
			assert.InDelta(t, tt.wantShipping, summary.Shipping, 0.001)
			assert.InDelta(t, tt.wantTotal, summary.Total, 0.001)
		})
	}
}

func TestCartService_PersistsAcrossRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 3)))
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 3)))

	restarted := newTestEnvWith(t, env.store, env.seeds, false)
	items := restarted.cart.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Velvet Sofa - Forest", items[0].Product.Name)
}

func TestCartService_KeepsSnapshotAfterCatalogEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	chair := env.product(t, 1)
	require.NoError(t, env.cart.AddToCart(ctx, chair))

	_, err := env.catalog.Update(ctx, 1, entity.ProductFields{
		Name:     chair.Name,
		Price:    10,
		Category: chair.Category,
		Image:    chair.Image,
	})
	require.NoError(t, err)
	_, err = env.catalog.Remove(ctx, 1)
	require.NoError(t, err)

	items := env.cart.Items(ctx)
	require.Len(t, items, 1)
	assert.InDelta(t, 599.0, items[0].Product.Price, 0.001)
}

func TestCartService_ItemsAreCopies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))

	items := env.cart.Items(ctx)
	items[0].Quantity = 50

	assert.Equal(t, 1, env.cart.ItemCount(ctx))
}
