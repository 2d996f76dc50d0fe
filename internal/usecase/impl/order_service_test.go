package impl

import (
	"context"
	"testing"
	"time"

	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeTestOrder(t *testing.T, env *testEnv, userID int64, items ...entity.Product) *entity.Order {
	t.Helper()

	cart := entity.NewCart()
	for _, p := range items {
		cart.Add(p)
	}
	order, err := env.orders.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID:        userID,
		Items:         cart.Snapshot(),
		Total:         entity.OrderTotal(cart.Subtotal()),
		PaymentMethod: entity.PaymentMethodCOD,
		Address:       "12 Birch Lane",
	})
	require.NoError(t, err)

	return order
}

func TestOrderService_PlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	order := placeTestOrder(t, env, 2, env.product(t, 1), env.product(t, 2))

	assert.NotZero(t, order.ID)
	assert.Equal(t, int64(2), order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, "12 Birch Lane", order.Address)
	assert.InDelta(t, 948.0, order.Total, 0.001)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Date.After(before))

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestOrderService_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID:        2,
		Items:         []entity.CartItem{{Product: env.product(t, 1), Quantity: 1}},
		PaymentMethod: "Barter",
	})

	require.Error(t, err)
	assert.True(t, isAppError(err, "VALIDATION_FAILED"))
	assert.Empty(t, env.publisher.Events())
}

func TestOrderService_NewestFirstAndUniqueIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	chair := env.product(t, 1)

	var ids []int64
	for range 5 {
		ids = append(ids, placeTestOrder(t, env, 2, chair).ID)
	}
	placeTestOrder(t, env, 3, chair)

	orders, err := env.orders.GetUserOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i, order := range orders {
		assert.Equal(t, ids[len(ids)-1-i], order.ID)
	}

	all, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	seen := map[int64]bool{}
	for _, order := range all {
		assert.False(t, seen[order.ID])
		seen[order.ID] = true
	}
	assert.Equal(t, int64(3), all[0].UserID)
}

func TestOrderService_GetUserOrders_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	orders, err := env.orders.GetUserOrders(context.Background(), 404)

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.GetOrder(context.Background(), 404)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ItemsAreSnapshots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	chair := env.product(t, 1)

	items := []entity.CartItem{{Product: chair, Quantity: 2}}
	order, err := env.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID:        2,
		Items:         items,
		Total:         1198,
		PaymentMethod: entity.PaymentMethodOnline,
		Address:       "1 Elm Street",
	})
	require.NoError(t, err)

	items[0].Quantity = 9
	items[0].Product.Price = 1
	_, err = env.catalog.Update(ctx, chair.ID, entity.ProductFields{Name: "Renamed", Price: 1, Category: chair.Category})
	require.NoError(t, err)

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, chair.Name, stored.Items[0].Product.Name)
	assert.InDelta(t, 599.0, stored.Items[0].Product.Price, 0.001)
}

func TestOrderService_UpdateOrderStatus_Free(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := placeTestOrder(t, env, 2, env.product(t, 4))

	steps := []entity.OrderStatus{
		entity.OrderStatusDelivered,
		entity.OrderStatusPending,
		entity.OrderStatusShipped,
	}
	for _, status := range steps {
		ok, err := env.orders.UpdateOrderStatus(ctx, order.ID, status)
		require.NoError(t, err)
		assert.True(t, ok)

		stored, err := env.orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status)
	}
}

func TestOrderService_UpdateOrderStatus_Strict(t *testing.T) {
	env := newTestEnvWith(t, newTestStore(t), newTestSeeds(t), true)
	ctx := context.Background()
	order := placeTestOrder(t, env, 2, env.product(t, 4))

	tests := []struct {
		name    string
		status  entity.OrderStatus
		wantErr bool
	}{
		{name: "skip ahead", status: entity.OrderStatusDelivered, wantErr: true},
		{name: "advance to shipped", status: entity.OrderStatusShipped},
		{name: "move back", status: entity.OrderStatusPending, wantErr: true},
		{name: "same status", status: entity.OrderStatusShipped},
		{name: "advance to delivered", status: entity.OrderStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := env.orders.UpdateOrderStatus(ctx, order.ID, tt.status)
			if tt.wantErr {
				assert.False(t, ok)
				assert.True(t, isAppError(err, "INVALID_STATUS_TRANSITION"))

				return
			}
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, stored.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := placeTestOrder(t, env, 2, env.product(t, 1))

	ok, err := env.orders.UpdateOrderStatus(ctx, order.ID+1, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.False(t, ok)
	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	order := placeTestOrder(t, env, 2, env.product(t, 1))

	ok, err := env.orders.UpdateOrderStatus(context.Background(), order.ID, "Lost")

	assert.False(t, ok)
	assert.True(t, isAppError(err, "VALIDATION_FAILED"))
}

func TestOrderService_PublishesEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := placeTestOrder(t, env, 2, env.product(t, 1))

	_, err := env.orders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)
	require.NoError(t, err)
	// unchanged status publishes nothing
	_, err = env.orders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)
	require.NoError(t, err)

	events := env.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, service.OrderEventPlaced, events[0].Type)
	assert.Equal(t, order.ID, events[0].OrderID)
	assert.Equal(t, int64(2), events[0].UserID)
	assert.Equal(t, "Pending", events[0].Status)
	assert.Equal(t, "COD", events[0].PaymentMethod)
	assert.Equal(t, service.OrderEventStatusChanged, events[1].Type)
	assert.Equal(t, "Shipped", events[1].Status)
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.publisher.err = errors.New("broker down")

	order := placeTestOrder(t, env, 2, env.product(t, 1))
	ok, err := env.orders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, env.publisher.Events(), 2)
}

func TestOrderService_PersistsAcrossRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := placeTestOrder(t, env, 2, env.product(t, 1))
	second := placeTestOrder(t, env, 2, env.product(t, 7), env.product(t, 8))
	_, err := env.orders.UpdateOrderStatus(ctx, first.ID, entity.OrderStatusShipped)
	require.NoError(t, err)

	restarted := newTestEnvWith(t, env.store, env.seeds, false)
	orders, err := restarted.orders.GetUserOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.Equal(t, entity.OrderStatusShipped, orders[1].Status)
	assert.True(t, second.Date.Equal(orders[0].Date))
	assert.InDelta(t, second.Total, orders[0].Total, 0.001)
}

func isAppError(err error, code string) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}
