package handler

import (
	"furnishop/internal/delivery/http/response"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// ProductHandler serves the public catalog.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{catalogUC: params.CatalogUC}
}

// ListProductsRequest holds the optional listing filters.
type ListProductsRequest struct {
	Search   string  `query:"search"`
	Category string  `query:"category" validate:"omitempty,category"`
	MaxPrice float64 `query:"maxPrice" validate:"gte=0"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	products, err := h.catalogUC.Search(c.Request().Context(), entity.ProductFilter{
		Query:    req.Search,
		Category: entity.Category(req.Category),
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.catalogUC.Featured(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	return response.OK(c, h.catalogUC.Categories())
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, ok, err := h.catalogUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrProductNotFound
	}

	return response.OK(c, product)
}
