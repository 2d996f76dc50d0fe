package service

import (
	"context"

	"furnishop/internal/domain/entity"
)

// PaymentProcessor settles (or pretends to settle) the amount due for an order.
// Implementations must honour ctx cancellation.
type PaymentProcessor interface {
	Process(ctx context.Context, method entity.PaymentMethod, amount float64) error
}
