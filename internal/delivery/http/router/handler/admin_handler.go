package handler

import (
	"net/http"

	"furnishop/internal/delivery/http/response"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CatalogUC   usecase.CatalogUsecase
	OrderUC     usecase.OrderUsecase
	SessionUC   usecase.SessionUsecase
	DashboardUC usecase.DashboardUsecase
}

// AdminHandler serves catalog management, order fulfilment and the dashboard.
type AdminHandler struct {
	catalogUC   usecase.CatalogUsecase
	orderUC     usecase.OrderUsecase
	sessionUC   usecase.SessionUsecase
	dashboardUC usecase.DashboardUsecase
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		catalogUC:   params.CatalogUC,
		orderUC:     params.OrderUC,
		sessionUC:   params.SessionUC,
		dashboardUC: params.DashboardUC,
	}
}

// ProductRequest carries the admin product form. An empty image gets the placeholder.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,category"`
	Description string  `json:"description"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

func (r ProductRequest) fields() entity.ProductFields {
	return entity.ProductFields{
		Name:        r.Name,
		Price:       r.Price,
		Category:    entity.Category(r.Category),
		Description: r.Description,
		Image:       r.Image,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func (h *AdminHandler) AddProduct(c echo.Context) error {
	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.catalogUC.Add(c.Request().Context(), req.fields())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added")
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()

	found, err := h.catalogUC.Update(ctx, id, req.fields())
	if err != nil {
		return errors.WithStack(err)
	}
	if !found {
		return domainerrors.ErrProductNotFound
	}

	product, _, err := h.catalogUC.GetByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

func (h *AdminHandler) RemoveProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.catalogUC.Remove(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !found {
		return domainerrors.ErrProductNotFound
	}

	return response.Success(c, http.StatusOK, nil, "Product removed")
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()

	found, err := h.orderUC.UpdateOrderStatus(ctx, id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}
	if !found {
		return domainerrors.ErrOrderNotFound
	}

	order, err := h.orderUC.GetOrder(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.sessionUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, users)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}
