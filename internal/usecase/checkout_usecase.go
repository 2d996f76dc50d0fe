package usecase

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CheckoutInput is what the shopper supplies at checkout.
type CheckoutInput struct {
	Address       string
	PaymentMethod entity.PaymentMethod
}

// CheckoutUsecase turns the active cart into an order for the logged-in user.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, error)
}
