package impl

import (
	"context"
	"testing"

	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	mockSvc "furnishop/internal/mocks/service"
	"furnishop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout(t *testing.T) {
	tests := []struct {
		name       string
		productIDs []int64
		method     entity.PaymentMethod
		wantTotal  float64
	}{
		{name: "free shipping", productIDs: []int64{1, 2}, method: entity.PaymentMethodCOD, wantTotal: 948},
		{name: "shipping surcharge", productIDs: []int64{8}, method: entity.PaymentMethodOnline, wantTotal: 248},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			env.login(t, "john@example.com", "user123")
			for _, id := range tt.productIDs {
				require.NoError(t, env.cart.AddToCart(ctx, env.product(t, id)))
			}

			order, err := env.checkout.Checkout(ctx, usecase.CheckoutInput{
				Address:       "  42 Maple Avenue  ",
				PaymentMethod: tt.method,
			})
			require.NoError(t, err)

			assert.InDelta(t, tt.wantTotal, order.Total, 0.001)
			assert.Equal(t, int64(2), order.UserID)
			assert.Equal(t, "  42 Maple Avenue  ", order.Address)
			assert.Equal(t, tt.method, order.PaymentMethod)
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Len(t, order.Items, len(tt.productIDs))
			assert.Empty(t, env.cart.Items(ctx))

			orders, err := env.orders.GetUserOrders(ctx, 2)
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, order.ID, orders[0].ID)
		})
	}
}

func TestCheckoutService_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		login    bool
		fillCart bool
		input    usecase.CheckoutInput
		wantCode string
	}{
		{
			name:     "not logged in",
			fillCart: true,
			input:    usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD},
			wantCode: "UNAUTHENTICATED",
		},
		{
			name:     "blank address",
			login:    true,
			fillCart: true,
			input:    usecase.CheckoutInput{Address: "   ", PaymentMethod: entity.PaymentMethodCOD},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown payment method",
			login:    true,
			fillCart: true,
			input:    usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: "IOU"},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "empty cart",
			login:    true,
			input:    usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD},
			wantCode: "CART_EMPTY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			if tt.login {
				env.login(t, "john@example.com", "user123")
			}
			if tt.fillCart {
				require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))
			}

			order, err := env.checkout.Checkout(ctx, tt.input)

			assert.Nil(t, order)
			assert.True(t, isAppError(err, tt.wantCode), "got %v", err)

			orders, err := env.orders.ListOrders(ctx)
			require.NoError(t, err)
			assert.Empty(t, orders)
			if tt.fillCart {
				assert.Len(t, env.cart.Items(ctx), 1)
			}
		})
	}
}

func newCheckoutWithPayment(env *testEnv, processor *mockSvc.MockPaymentProcessor) usecase.CheckoutUsecase {
	return NewCheckoutService(CheckoutServiceParams{
		Session: env.session,
		Cart:    env.cart,
		Orders:  env.orders,
		Payment: processor,
		Logger:  newDiscardLogger(),
	})
}

func TestCheckoutService_Cancelled(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "john@example.com", "user123")
	require.NoError(t, env.cart.AddToCart(context.Background(), env.product(t, 3)))

	processor := mockSvc.NewMockPaymentProcessor(t)
	checkout := newCheckoutWithPayment(env, processor)

	ctx, cancel := context.WithCancel(context.Background())
	processor.EXPECT().Process(mock.Anything, entity.PaymentMethodOnline, 1299.0).
		RunAndReturn(func(ctx context.Context, _ entity.PaymentMethod, _ float64) error {
			cancel()

			return ctx.Err()
		}).Once()

	order, err := checkout.Checkout(ctx, usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodOnline})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, context.Canceled)

	orders, err := env.orders.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Len(t, env.cart.Items(context.Background()), 1)
}

func TestCheckoutService_PaymentFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "john@example.com", "user123")
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 3)))

	processor := mockSvc.NewMockPaymentProcessor(t)
	checkout := newCheckoutWithPayment(env, processor)
	processor.EXPECT().Process(mock.Anything, entity.PaymentMethodCOD, 1299.0).Return(errors.New("gateway timeout")).Once()

	order, err := checkout.Checkout(ctx, usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	assert.Len(t, env.cart.Items(ctx), 1)
	assert.Len(t, env.publisher.Events(), 0)
}

func TestCheckoutService_LogoutKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "john@example.com", "user123")
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 5)))

	require.NoError(t, env.session.Logout(ctx))
	_, err := env.checkout.Checkout(ctx, usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	env.login(t, "admin@furnishop.com", "admin123")
	order, err := env.checkout.Checkout(ctx, usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.UserID)
	assert.InDelta(t, 298.0, order.Total, 0.001)
}

func TestCheckoutService_KeepsItemsAddedDuringPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "john@example.com", "user123")
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))

	processor := mockSvc.NewMockPaymentProcessor(t)
	checkout := newCheckoutWithPayment(env, processor)

	paying := make(chan struct{})
	release := make(chan struct{})
	processor.EXPECT().Process(mock.Anything, entity.PaymentMethodCOD, 599.0).
		RunAndReturn(func(context.Context, entity.PaymentMethod, float64) error {
			close(paying)
			<-release

			return nil
		}).Once()

	type result struct {
		order *entity.Order
		err   error
	}
	done := make(chan result, 1)
	go func() {
		order, err := checkout.Checkout(ctx, usecase.CheckoutInput{Address: "1 Elm Street", PaymentMethod: entity.PaymentMethodCOD})
		done <- result{order: order, err: err}
	}()

	<-paying
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 1)))
	require.NoError(t, env.cart.AddToCart(ctx, env.product(t, 2)))
	close(release)

	res := <-done
	require.NoError(t, res.err)
	require.Len(t, res.order.Items, 1)
	assert.Equal(t, int64(1), res.order.Items[0].Product.ID)
	assert.Equal(t, 1, res.order.Items[0].Quantity)

	items := env.cart.Items(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Product.ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(2), items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)
}
