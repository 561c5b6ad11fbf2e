package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locator/internal/delivery/http/validator"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	mockusecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	locationUC *mockusecase.MockLocationUsecase
	handler    *LocationHandler
	echo       *echo.Echo
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	locationUC := mockusecase.NewMockLocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixture{
		locationUC: locationUC,
		handler: &LocationHandler{
			locationUC: locationUC,
			logger:     logger,
		},
		echo: e,
	}
}

func (f *handlerFixture) newContext(method, target, body, shop string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if shop != "" {
		req.Header.Set(HeaderXShopDomain, shop)
	}

	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func sampleLocation(id int64) *entity.Location {
	zip := "62701"
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Location{
		ID:        id,
		Shop:      "test-shop.myshopify.com",
		Name:      "Downtown Store",
		Address:   "1 Main St",
		City:      "Springfield",
		Country:   "US",
		ZipCode:   &zip,
		Latitude:  39.78,
		Longitude: -89.65,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestLocationHandler_ListLocations_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		ListLocations(mock.Anything, "test-shop.myshopify.com").
		Return([]*entity.Location{sampleLocation(1), sampleLocation(2)}, nil)

	c, rec := f.newContext(http.MethodGet, "/admin/locations", "", "test-shop.myshopify.com")

	err := f.handler.ListLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Downtown Store")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestLocationHandler_MissingShopHeader(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.newContext(http.MethodGet, "/admin/locations", "", "")

	err := f.handler.ListLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_SHOP")
}

func TestLocationHandler_CreateLocation_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		CreateLocation(mock.Anything, mock.AnythingOfType("*usecase.CreateLocationInput")).
		Run(func(ctx context.Context, input *usecase.CreateLocationInput) {
			assert.Equal(t, "test-shop.myshopify.com", input.Shop)
			assert.Equal(t, "Downtown Store", input.Name)
			assert.Nil(t, input.Manual)
		}).
		Return(sampleLocation(42), nil)

	body := `{"name":"Downtown Store","address":"1 Main St","city":"Springfield","country":"US","zip_code":"62701"}`
	c, rec := f.newContext(http.MethodPost, "/admin/locations", body, "test-shop.myshopify.com")

	err := f.handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), "39.78")
}

func TestLocationHandler_CreateLocation_ManualCoordinates(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		CreateLocation(mock.Anything, mock.AnythingOfType("*usecase.CreateLocationInput")).
		Run(func(ctx context.Context, input *usecase.CreateLocationInput) {
			require.NotNil(t, input.Manual)
			assert.InDelta(t, 51.5, input.Manual.Latitude, 1e-9)
			assert.InDelta(t, -0.12, input.Manual.Longitude, 1e-9)
		}).
		Return(sampleLocation(7), nil)

	body := `{"name":"Flagship","address":"10 Downing St","city":"London","country":"GB","manual_coordinates":{"latitude":51.5,"longitude":-0.12}}`
	c, rec := f.newContext(http.MethodPost, "/admin/locations", body, "test-shop.myshopify.com")

	err := f.handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLocationHandler_CreateLocation_MissingRequiredField(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"name":"Downtown Store","address":"1 Main St","country":"US"}`
	c, rec := f.newContext(http.MethodPost, "/admin/locations", body, "test-shop.myshopify.com")

	err := f.handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLocationHandler_CreateLocation_GeocodingFailed(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		CreateLocation(mock.Anything, mock.AnythingOfType("*usecase.CreateLocationInput")).
		Return(nil, domainerrors.ErrGeocodingFailed)

	body := `{"name":"Nowhere","address":"No Such Street 9999","city":"Atlantis","country":"XX"}`
	c, rec := f.newContext(http.MethodPost, "/admin/locations", body, "test-shop.myshopify.com")

	err := f.handler.CreateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "GEOCODING_FAILED")
}

func TestLocationHandler_UpdateLocation_Success(t *testing.T) {
	f := newHandlerFixture(t)

	updated := sampleLocation(42)
	updated.City = "Shelbyville"

	f.locationUC.EXPECT().
		UpdateLocation(mock.Anything, int64(42), mock.AnythingOfType("*usecase.UpdateLocationInput")).
		Run(func(ctx context.Context, id int64, input *usecase.UpdateLocationInput) {
			require.NotNil(t, input.City)
			assert.Equal(t, "Shelbyville", *input.City)
			assert.Nil(t, input.Name)
		}).
		Return(updated, nil)

	c, rec := f.newContext(http.MethodPut, "/admin/locations/42", `{"city":"Shelbyville"}`, "test-shop.myshopify.com")
	c.SetPath("/admin/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := f.handler.UpdateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shelbyville")
}

func TestLocationHandler_UpdateLocation_InvalidID(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.newContext(http.MethodPut, "/admin/locations/abc", `{"city":"Shelbyville"}`, "test-shop.myshopify.com")
	c.SetPath("/admin/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := f.handler.UpdateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestLocationHandler_UpdateLocation_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		UpdateLocation(mock.Anything, int64(404), mock.AnythingOfType("*usecase.UpdateLocationInput")).
		Return(nil, domainerrors.ErrLocationNotFound)

	c, rec := f.newContext(http.MethodPut, "/admin/locations/404", `{"name":"Renamed"}`, "test-shop.myshopify.com")
	c.SetPath("/admin/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := f.handler.UpdateLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocationHandler_DeleteLocation_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		DeleteLocation(mock.Anything, int64(42)).
		Return(int64(42), nil)

	c, rec := f.newContext(http.MethodDelete, "/admin/locations/42", "", "test-shop.myshopify.com")
	c.SetPath("/admin/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := f.handler.DeleteLocation(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestLocationHandler_DeleteAllLocations_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		DeleteAllLocations(mock.Anything, "test-shop.myshopify.com").
		Return(int64(3), nil)

	c, rec := f.newContext(http.MethodDelete, "/admin/locations", "", "test-shop.myshopify.com")

	err := f.handler.DeleteAllLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":3`)
}

func TestLocationHandler_UnexpectedErrorPropagates(t *testing.T) {
	f := newHandlerFixture(t)

	f.locationUC.EXPECT().
		ListLocations(mock.Anything, "test-shop.myshopify.com").
		Return(nil, assert.AnError)

	c, _ := f.newContext(http.MethodGet, "/admin/locations", "", "test-shop.myshopify.com")

	err := f.handler.ListLocations(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
