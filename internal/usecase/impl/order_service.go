package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"furnishop/config"
	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/repository"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Orders are kept newest first.
type orderService struct {
	mu     sync.Mutex
	loaded bool
	orders []*entity.Order

	repo              repository.OrderRepository
	ids               service.IDGenerator
	publisher         service.EventPublisher
	strictTransitions bool
	now               func() time.Time
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Repo      repository.OrderRepository
	IDs       service.IDGenerator
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	strict := false
	if params.Config != nil && params.Config.Orders != nil {
		strict = params.Config.Orders.StrictTransitions
	}

	return &orderService{
		repo:              params.Repo,
		ids:               params.IDs,
		publisher:         params.Publisher,
		strictTransitions: strict,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) Init(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.load(ctx)
}

func (srv *orderService) ensureLoaded(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	return srv.load(ctx)
}

func (srv *orderService) load(ctx context.Context) error {
	orders, err := srv.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		orders = []*entity.Order{}
	case err != nil:
		return storageError(err, "load orders")
	}

	srv.orders = orders
	srv.loaded = true

	return nil
}

// PlaceOrder creates a Pending order from a snapshot of the given items and stores it first.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + input.PaymentMethod.String())
	}

	order, err := srv.placeOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.Float64("total", order.Total),
	)
	srv.publish(ctx, service.OrderEventPlaced, order)

	return order, nil
}

func (srv *orderService) placeOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:            srv.ids.NextID(),
		UserID:        input.UserID,
		Items:         entity.CloneItems(input.Items),
		Total:         input.Total,
		Status:        entity.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Date:          srv.now().UTC(),
		Address:       input.Address,
	}

	next := make([]*entity.Order, 0, len(srv.orders)+1)
	next = append(next, order)
	next = append(next, srv.orders...)
	if err := srv.repo.Save(ctx, next); err != nil {
		return nil, storageError(err, "save orders")
	}
	srv.orders = next

	return order.Clone(), nil
}

// GetUserOrders returns the orders of one user, newest first.
func (srv *orderService) GetUserOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0)
	for _, order := range srv.orders {
		if order.UserID == userID {
			orders = append(orders, order.Clone())
		}
	}

	return orders, nil
}

// ListOrders returns every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(srv.orders))
	for _, order := range srv.orders {
		orders = append(orders, order.Clone())
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	for _, order := range srv.orders {
		if order.ID == orderID {
			return order.Clone(), nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

// UpdateOrderStatus sets the status of an order. Unless strict transitions are
// configured, any status may follow any other.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (bool, error) {
	if !status.IsValid() {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + status.String())
	}

	updated, changed, err := srv.updateStatus(ctx, orderID, status)
	if err != nil || updated == nil {
		return false, err
	}

	if changed {
		srv.log(ctx).Info("Order status updated",
			slog.Int64("order_id", orderID),
			slog.String("status", status.String()),
		)
		srv.publish(ctx, service.OrderEventStatusChanged, updated)
	}

	return true, nil
}

func (srv *orderService) updateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, false, err
	}

	idx := -1
	for i, order := range srv.orders {
		if order.ID == orderID {
			idx = i

			break
		}
	}
	if idx < 0 {
		srv.log(ctx).Debug("Order status update ignored, unknown order", slog.Int64("order_id", orderID))

		return nil, false, nil
	}

	current := srv.orders[idx]
	if current.Status == status {
		return current.Clone(), false, nil
	}
	if srv.strictTransitions && !current.Status.CanAdvanceTo(status) {
		return nil, false, domainerrors.ErrInvalidStatusTransition.WithDetails(
			current.Status.String() + " -> " + status.String())
	}

	updated := current.Clone()
	updated.Status = status

	next := make([]*entity.Order, len(srv.orders))
	copy(next, srv.orders)
	next[idx] = updated
	if err := srv.repo.Save(ctx, next); err != nil {
		return nil, false, storageError(err, "save orders")
	}
	srv.orders = next

	return updated.Clone(), true, nil
}

// publish emits an order event. Delivery is best-effort; failures are only logged.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Status:        order.Status.String(),
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod.String(),
		OccurredAt:    srv.now().UTC(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
