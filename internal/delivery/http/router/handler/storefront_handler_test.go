package handler

import (
	"net/http"
	"testing"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStorefrontHandler_ListLocations_Success(t *testing.T) {
	f := newHandlerFixture(t)
	handler := &StorefrontHandler{locationUC: f.locationUC}

	f.locationUC.EXPECT().
		ListLocations(mock.Anything, "test-shop.myshopify.com").
		Return([]*entity.Location{sampleLocation(1)}, nil)

	c, rec := f.newContext(http.MethodGet, "/locations.json?shop=test-shop.myshopify.com", "", "")

	err := handler.ListLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locations"`)
	assert.Contains(t, rec.Body.String(), "Downtown Store")
}

func TestStorefrontHandler_ListLocations_EmptyShopList(t *testing.T) {
	f := newHandlerFixture(t)
	handler := &StorefrontHandler{locationUC: f.locationUC}

	f.locationUC.EXPECT().
		ListLocations(mock.Anything, "unknown-shop.myshopify.com").
		Return([]*entity.Location{}, nil)

	c, rec := f.newContext(http.MethodGet, "/locations.json?shop=unknown-shop.myshopify.com", "", "")

	err := handler.ListLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locations":[]`)
}

func TestStorefrontHandler_ListLocations_MissingShopParam(t *testing.T) {
	f := newHandlerFixture(t)
	handler := &StorefrontHandler{locationUC: f.locationUC}

	c, rec := f.newContext(http.MethodGet, "/locations.json", "", "")

	err := handler.ListLocations(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_SHOP")
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.newContext(http.MethodGet, "/health", "", "")

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
