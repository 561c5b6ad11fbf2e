package handler

import (
	"log/slog"
	"net/http"

	"locator/internal/delivery/http/response"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// StorefrontHandler serves the public, unauthenticated listing consumed by
// storefront widgets.
type StorefrontHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ListLocations handles the public locations feed for a shop
func (h *StorefrontHandler) ListLocations(c echo.Context) error {
	shop := c.QueryParam("shop")
	if shop == "" {
		return response.BadRequest(c, "MISSING_SHOP", "shop param required")
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), shop)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"locations": locations}, "Locations retrieved successfully")
}
