package handler

import (
	"furnishop/internal/delivery/http/response"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
}

// CartHandler serves the cart. Every mutation responds with the updated summary.
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
	}
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// UpdateCartItemRequest sets a quantity; zero or less removes the item.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return response.OK(c, h.cartUC.Summary(c.Request().Context()))
}

// AddItem snapshots the current catalog entry into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()

	product, ok, err := h.catalogUC.GetByID(ctx, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	if err := h.cartUC.AddToCart(ctx, product); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	var req UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()

	if err := h.cartUC.UpdateQuantity(ctx, productID, *req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.cartUC.RemoveFromCart(ctx, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.cartUC.ClearCart(ctx); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cartUC.Summary(ctx))
}
