package usecase

import (
	"context"

	"furnishop/internal/domain/entity"
)

// CartSummary is a read-only view of the cart with its derived amounts.
type CartSummary struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
	Shipping  float64           `json:"shipping"`
	Total     float64           `json:"total"`
}

// CartUsecase manages the active cart. Every mutation is persisted before it returns.
type CartUsecase interface {
	Init(ctx context.Context) error

	// AddToCart stores a snapshot of product, or bumps the quantity of an existing line.
	AddToCart(ctx context.Context, product entity.Product) error
	RemoveFromCart(ctx context.Context, productID int64) error

	// UpdateQuantity sets the quantity; zero or less removes the line.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) error
	ClearCart(ctx context.Context) error

	// RemoveItems takes the given quantities off the cart, leaving anything
	// added since they were read in place.
	RemoveItems(ctx context.Context, items []entity.CartItem) error

	Items(ctx context.Context) []entity.CartItem
	ItemCount(ctx context.Context) int
	Subtotal(ctx context.Context) float64
	Summary(ctx context.Context) *CartSummary
}
