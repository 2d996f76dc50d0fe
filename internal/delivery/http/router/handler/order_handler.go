package handler

import (
	"net/http"

	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/delivery/http/response"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/service"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	OrderUC    usecase.OrderUsecase
	QRCode     service.QRCodeService
}

// OrderHandler serves checkout and the shopper's order history. All routes
// run behind AuthMiddleware.Authenticate.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
	qrcode     service.QRCodeService
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		checkoutUC: params.CheckoutUC,
		orderUC:    params.OrderUC,
		qrcode:     params.QRCode,
	}
}

type CheckoutRequest struct {
	Address       string `json:"address" validate:"required,notblank"`
	PaymentMethod string `json:"paymentMethod" validate:"required,payment_method"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.checkoutUC.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Address:       req.Address,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.orderUC.GetUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}

// visibleOrder loads an order the current user may see. Other users' orders
// read as not found.
func (h *OrderHandler) visibleOrder(c echo.Context) (*entity.Order, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.visibleOrder(c)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// GetOrderQRCode renders the order confirmation QR code as a PNG.
func (h *OrderHandler) GetOrderQRCode(c echo.Context) error {
	order, err := h.visibleOrder(c)
	if err != nil {
		return err
	}

	png, err := h.qrcode.GenerateOrderQR(order)
	if err != nil {
		return errors.Wrap(err, "generate order qr code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
