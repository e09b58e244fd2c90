// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"printdesk/internal/delivery/http/middleware"
	"printdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
	}

	// Order routes that require authentication
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate) // Apply bearer token authentication middleware
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/my-orders", r.orderHandler.ListOwn)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("/:id/document", r.orderHandler.Document)
		orderGroup.GET("/:id/payment-qr", r.orderHandler.PaymentQR)
	}

	// Admin routes that require authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.SetStatus)
		adminGroup.PUT("/orders/:id/complete", r.adminHandler.Complete)
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
