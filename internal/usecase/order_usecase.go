package usecase

import (
	"context"

	"furnishop/internal/domain/entity"
)

// PlaceOrderInput is everything fixed on an order at creation.
type PlaceOrderInput struct {
	UserID        int64
	Items         []entity.CartItem
	Total         float64
	PaymentMethod entity.PaymentMethod
	Address       string
}

// OrderUsecase manages the order history, most recent first.
type OrderUsecase interface {
	Init(ctx context.Context) error

	// PlaceOrder always creates a Pending order and puts it first.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*entity.Order, error)

	// UpdateOrderStatus replaces the status of an order. An unknown id is a no-op
	// and reports false.
	UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (bool, error)

	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*entity.Order, error)
}
