// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"herbaciarnia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	FavoritesHandler  *handler.FavoritesHandler
	CheckoutHandler   *handler.CheckoutHandler
	EngagementHandler *handler.EngagementHandler
	AdminHandler      *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	favoritesHandler  *handler.FavoritesHandler
	checkoutHandler   *handler.CheckoutHandler
	engagementHandler *handler.EngagementHandler
	adminHandler      *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		favoritesHandler:  params.FavoritesHandler,
		checkoutHandler:   params.CheckoutHandler,
		engagementHandler: params.EngagementHandler,
		adminHandler:      params.AdminHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/meta", r.catalogHandler.GetMeta)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	// Favorites routes
	favoritesGroup := e.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoritesHandler.ListFavorites)
		favoritesGroup.POST("", r.favoritesHandler.AddFavorite)
		favoritesGroup.DELETE("/:productId", r.favoritesHandler.RemoveFavorite)
	}

	// Checkout and order routes
	e.GET("/checkout/options", r.checkoutHandler.GetOptions)
	e.POST("/checkout", r.checkoutHandler.PlaceOrder)
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("/:number", r.checkoutHandler.GetOrder)
		orderGroup.GET("/:number/qr", r.checkoutHandler.GetOrderQR)
	}

	// Newsletter and contact routes
	e.POST("/newsletter/subscriptions", r.engagementHandler.SubscribeNewsletter)
	e.POST("/contact/messages", r.engagementHandler.SubmitContactMessage)

	// Admin routes
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/dashboard", r.adminHandler.GetDashboard)
		adminGroup.PUT("/orders/:number/status", r.adminHandler.UpdateOrderStatus)
	}
}
