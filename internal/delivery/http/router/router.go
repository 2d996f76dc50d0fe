// Package router registers the storefront API routes.
package router

import (
	"furnishop/internal/delivery/http/middleware"
	"furnishop/internal/delivery/http/router/handler"
	"furnishop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	session *handler.SessionHandler
	product *handler.ProductHandler
	cart    *handler.CartHandler
	order   *handler.OrderHandler
	admin   *handler.AdminHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		session: params.SessionHandler,
		product: params.ProductHandler,
		cart:    params.CartHandler,
		order:   params.OrderHandler,
		admin:   params.AdminHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.session.GetSession)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/signup", r.session.Signup)
		sessionGroup.POST("/logout", r.session.Logout)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.product.ListProducts)
		productGroup.GET("/featured", r.product.ListFeatured)
		productGroup.GET("/categories", r.product.ListCategories)
		productGroup.GET("/:id", r.product.GetProduct)
	}

	// The cart belongs to the client, not to an account, so it needs no login.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.DELETE("", r.cart.ClearCart)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PUT("/items/:productId", r.cart.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
	}

	e.POST("/checkout", r.order.Checkout, r.auth.Authenticate)

	orderGroup := e.Group("/orders", r.auth.Authenticate)
	{
		orderGroup.GET("", r.order.ListMyOrders)
		orderGroup.GET("/:id", r.order.GetOrder)
		orderGroup.GET("/:id/qrcode", r.order.GetOrderQRCode)
	}

	adminGroup := e.Group("/admin", r.auth.Authenticate, r.auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/products", r.admin.AddProduct)
		adminGroup.PUT("/products/:id", r.admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.admin.RemoveProduct)
		adminGroup.GET("/orders", r.admin.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.admin.UpdateOrderStatus)
		adminGroup.GET("/users", r.admin.ListUsers)
		adminGroup.GET("/stats", r.admin.Stats)
	}
}

// HandlerModule provides every handler the router needs.
var HandlerModule = fx.Provide(
	handler.NewSessionHandler,
	handler.NewProductHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewAdminHandler,
)
