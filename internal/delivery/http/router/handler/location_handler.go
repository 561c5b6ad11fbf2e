package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"locator/internal/delivery/http/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXShopDomain carries the owning shop, injected by the admin gateway
// after authentication.
const HeaderXShopDomain = "X-Shop-Domain"

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for the admin location handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ManualCoordinatesRequest carries caller-supplied coordinates that bypass
// geocoding. No range validation beyond "is numeric".
type ManualCoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Name    string                    `json:"name" validate:"required"`
	Address string                    `json:"address" validate:"required"`
	City    string                    `json:"city" validate:"required"`
	Country string                    `json:"country" validate:"required"`
	ZipCode *string                   `json:"zip_code,omitempty"`
	Phone   *string                   `json:"phone,omitempty"`
	Manual  *ManualCoordinatesRequest `json:"manual_coordinates,omitempty"`
}

// UpdateLocationRequest represents the request body for updating a location
type UpdateLocationRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// ListLocations handles listing every location for the shop
func (h *LocationHandler) ListLocations(c echo.Context) error {
	shop, err := h.getShop(c)
	if err != nil {
		return err
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), shop)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// CreateLocation handles creating a new location
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	shop, err := h.getShop(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateLocationInput{
		Shop:    shop,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		ZipCode: req.ZipCode,
		Phone:   req.Phone,
	}
	if req.Manual != nil {
		input.Manual = &usecase.ManualCoordinates{
			Latitude:  req.Manual.Latitude,
			Longitude: req.Manual.Longitude,
		}
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateLocation handles updating a location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	if _, err := h.getShop(c); err != nil {
		return err
	}

	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		ZipCode: req.ZipCode,
		Phone:   req.Phone,
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), locationID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation handles deleting a single location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	if _, err := h.getShop(c); err != nil {
		return err
	}

	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	removedID, err := h.locationUC.DeleteLocation(c.Request().Context(), locationID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"id": removedID}, "Location deleted successfully")
}

// DeleteAllLocations handles the bulk cleanup for a shop, e.g. on uninstall
func (h *LocationHandler) DeleteAllLocations(c echo.Context) error {
	shop, err := h.getShop(c)
	if err != nil {
		return err
	}

	count, err := h.locationUC.DeleteAllLocations(c.Request().Context(), shop)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"count": count}, "Locations deleted successfully")
}

// getShop extracts the owning shop from the gateway header
func (h *LocationHandler) getShop(c echo.Context) (string, error) {
	shop := c.Request().Header.Get(HeaderXShopDomain)
	if shop == "" {
		return "", response.BadRequest(c, "MISSING_SHOP", "Shop header is required")
	}

	return shop, nil
}

// handleAppError converts domain errors into the response envelope and lets
// everything else fall through to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
