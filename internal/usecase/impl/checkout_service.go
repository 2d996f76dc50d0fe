package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"go.uber.org/fx"
)

type checkoutService struct {
	session usecase.SessionUsecase
	cart    usecase.CartUsecase
	orders  usecase.OrderUsecase
	payment service.PaymentProcessor
	logger  *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Session usecase.SessionUsecase
	Cart    usecase.CartUsecase
	Orders  usecase.OrderUsecase
	Payment service.PaymentProcessor
	Logger  *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		session: params.Session,
		cart:    params.Cart,
		orders:  params.Orders,
		payment: params.Payment,
		logger:  params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order for the cart contents as they are when checkout starts,
// then takes the ordered items off the cart. Items added while the payment is
// pending stay in the cart. Nothing is written if payment fails or ctx is cancelled.
func (srv *checkoutService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	user := srv.session.CurrentUser(ctx)
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if strings.TrimSpace(input.Address) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping address is required")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method: " + input.PaymentMethod.String())
	}

	items := srv.cart.Items(ctx)
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	cart := entity.Cart{Items: items}
	total := entity.OrderTotal(cart.Subtotal())

	if err := srv.payment.Process(ctx, input.PaymentMethod, total); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "checkout cancelled")
		}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Payment failed", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentFailed
	}

	order, err := srv.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID:        user.ID,
		Items:         items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
	})
	if err != nil {
		return nil, err
	}

	if err := srv.cart.RemoveItems(ctx, order.Items); err != nil {
		// the order is already stored, only the cart stays stale
		srv.log(ctx).Error("Failed to remove ordered items from cart",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", user.ID),
		slog.Float64("total", total),
	)

	return order, nil
}
