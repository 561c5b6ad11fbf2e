// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/internal/delivery/http/middleware"
	"locator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler     *handler.LocationHandler
	StorefrontHandler   *handler.StorefrontHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler     *handler.LocationHandler
	storefrontHandler   *handler.StorefrontHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:     params.LocationHandler,
		storefrontHandler:   params.StorefrontHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront feed, no auth
	e.GET("/locations.json", r.storefrontHandler.ListLocations)

	// Admin routes; the gateway authenticates and injects X-Shop-Domain
	adminGroup := e.Group("/admin/locations")
	{
		adminGroup.GET("", r.locationHandler.ListLocations)
		adminGroup.POST("", r.locationHandler.CreateLocation)
		adminGroup.PUT("/:id", r.locationHandler.UpdateLocation)
		adminGroup.DELETE("/:id", r.locationHandler.DeleteLocation)
		adminGroup.DELETE("", r.locationHandler.DeleteAllLocations)
	}
}
