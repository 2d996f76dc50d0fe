package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"
)

type cartService struct {
	mu     sync.Mutex
	loaded bool
	cart   *entity.Cart

	repo   repository.CartRepository
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(repo repository.CartRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cart:   entity.NewCart(),
		repo:   repo,
		logger: logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Init(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.load(ctx)
}

func (srv *cartService) ensureLoaded(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	return srv.load(ctx)
}

func (srv *cartService) load(ctx context.Context) error {
	cart, err := srv.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		cart = entity.NewCart()
	case err != nil:
		return storageError(err, "load cart")
	}

	srv.cart = cart
	srv.loaded = true

	return nil
}

// mutate applies change to a copy of the cart and swaps it in once persisted,
// so a failed write leaves the cart as it was. change reports whether anything changed.
func (srv *cartService) mutate(ctx context.Context, action string, change func(cart *entity.Cart) bool) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return err
	}

	next := &entity.Cart{Items: srv.cart.Snapshot()}
	if !change(next) {
		return nil
	}

	if err := srv.repo.Save(ctx, next); err != nil {
		return storageError(err, "save cart")
	}
	srv.cart = next

	srv.log(ctx).Info("Cart updated",
		slog.String("action", action),
		slog.Int("item_count", next.ItemCount()),
	)

	return nil
}

func (srv *cartService) AddToCart(ctx context.Context, product entity.Product) error {
	return srv.mutate(ctx, "add", func(cart *entity.Cart) bool {
		cart.Add(product)

		return true
	})
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID int64) error {
	return srv.mutate(ctx, "remove", func(cart *entity.Cart) bool {
		return cart.Remove(productID)
	})
}

func (srv *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	return srv.mutate(ctx, "update_quantity", func(cart *entity.Cart) bool {
		return cart.SetQuantity(productID, quantity)
	})
}

func (srv *cartService) ClearCart(ctx context.Context) error {
	return srv.mutate(ctx, "clear", func(cart *entity.Cart) bool {
		cart.Clear()

		return true
	})
}

func (srv *cartService) RemoveItems(ctx context.Context, items []entity.CartItem) error {
	return srv.mutate(ctx, "remove_items", func(cart *entity.Cart) bool {
		return cart.Subtract(items)
	})
}

// snapshot returns a copy of the current cart; a load failure is logged and reads as empty.
func (srv *cartService) snapshot(ctx context.Context) *entity.Cart {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.Any("error", err))

		return entity.NewCart()
	}

	return &entity.Cart{Items: srv.cart.Snapshot()}
}

func (srv *cartService) Items(ctx context.Context) []entity.CartItem {
	return srv.snapshot(ctx).Items
}

func (srv *cartService) ItemCount(ctx context.Context) int {
	return srv.snapshot(ctx).ItemCount()
}

func (srv *cartService) Subtotal(ctx context.Context) float64 {
	return srv.snapshot(ctx).Subtotal()
}

func (srv *cartService) Summary(ctx context.Context) *usecase.CartSummary {
	cart := srv.snapshot(ctx)
	subtotal := cart.Subtotal()

	summary := &usecase.CartSummary{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Subtotal:  subtotal,
	}
	if !cart.IsEmpty() {
		summary.Shipping = entity.ShippingFor(subtotal)
		summary.Total = entity.OrderTotal(subtotal)
	}

	return summary
}
