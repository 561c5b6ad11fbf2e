package impl

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ListLocations(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	expected := []*entity.Location{storedLocation(1), storedLocation(2)}

	fx.locationRepo.EXPECT().
		FindLocationsByShop(ctx, "test-shop.myshopify.com").
		Return(expected, nil)

	locations, err := fx.service.ListLocations(ctx, "test-shop.myshopify.com")
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_CreateLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.CreateLocationInput{
		Shop:    "test-shop.myshopify.com",
		Name:    "HQ",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
	}

	fx.geocoder.EXPECT().
		Geocode(ctx, "1 Main St, Springfield, US").
		Return(&service.Coordinates{Latitude: 39.78, Longitude: -89.65}, nil).
		Once()

	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(_ context.Context, location *entity.Location) {
			location.ID = 42 // the store assigns the surrogate key
		}).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, input)
	require.NoError(t, err)
	assert.Greater(t, location.ID, int64(0))
	assert.Equal(t, 39.78, location.Latitude)
	assert.Equal(t, -89.65, location.Longitude)
	assert.Equal(t, "HQ", location.Name)
	assert.Equal(t, testFixedTime, location.CreatedAt)
	assert.Equal(t, testFixedTime, location.UpdatedAt)
}

func TestLocationService_CreateLocation_GeocodeMiss_NoRowWritten(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.CreateLocationInput{
		Shop:    "test-shop.myshopify.com",
		Name:    "HQ",
		Address: "1 Nowhere Rd",
		City:    "Atlantis",
		Country: "Unknownland9999",
	}

	// No repository expectations: a geocoding miss must never reach storage.
	fx.geocoder.EXPECT().
		Geocode(ctx, "1 Nowhere Rd, Atlantis, Unknownland9999").
		Return(nil, service.ErrNoMatch)

	location, err := fx.service.CreateLocation(ctx, input)
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrGeocodingFailed, err)
}

func TestLocationService_CreateLocation_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateLocationInput
	}{
		{
			name:  "missing name",
			input: &usecase.CreateLocationInput{Shop: "s", Address: "a", City: "c", Country: "US"},
		},
		{
			name:  "missing address",
			input: &usecase.CreateLocationInput{Shop: "s", Name: "n", City: "c", Country: "US"},
		},
		{
			name:  "missing city",
			input: &usecase.CreateLocationInput{Shop: "s", Name: "n", Address: "a", Country: "US"},
		},
		{
			name:  "missing country",
			input: &usecase.CreateLocationInput{Shop: "s", Name: "n", Address: "a", City: "c"},
		},
		{
			name:  "whitespace-only name",
			input: &usecase.CreateLocationInput{Shop: "s", Name: "   ", Address: "a", City: "c", Country: "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No geocoder or repository expectations: validation failures
			// must happen before any network or storage call.
			fx := createTestLocationService(t)

			location, err := fx.service.CreateLocation(context.Background(), tt.input)
			assert.Nil(t, location)
			assert.Equal(t, domainerrors.ErrValidationFailed, err)
		})
	}
}

func TestLocationService_CreateLocation_ManualCoordinates_BypassesGeocoder(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.CreateLocationInput{
		Shop:    "test-shop.myshopify.com",
		Name:    "Pop-up",
		Address: "1 Pier Rd",
		City:    "Harborton",
		Country: "US",
		Manual:  &usecase.ManualCoordinates{Latitude: 12.345678, Longitude: -98.7654321},
	}

	// The geocoder mock has no expectations; any call would fail the test.
	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 12.345678, location.Latitude)
	assert.Equal(t, -98.7654321, location.Longitude)
}

func TestLocationService_UpdateLocation_NonAddressField_NoGeocode(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	existing := storedLocation(5)
	input := &usecase.UpdateLocationInput{
		Phone: strPtr("+1 555 0100"),
	}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, int64(5)).
		Return(existing, nil)

	fx.locationRepo.EXPECT().
		UpdateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.UpdateLocation(ctx, 5, input)
	require.NoError(t, err)
	assert.Equal(t, 39.78, location.Latitude)
	assert.Equal(t, -89.65, location.Longitude)
	require.NotNil(t, location.Phone)
	assert.Equal(t, "+1 555 0100", *location.Phone)
	assert.Equal(t, testFixedTime, location.UpdatedAt)
}

func TestLocationService_UpdateLocation_AddressField_RegeocodesMergedAddress(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	existing := storedLocation(5)
	input := &usecase.UpdateLocationInput{
		City: strPtr("Shelbyville"),
	}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, int64(5)).
		Return(existing, nil)

	// New city merged with the stored address and country.
	fx.geocoder.EXPECT().
		Geocode(ctx, "1 Main St, Shelbyville, US").
		Return(&service.Coordinates{Latitude: 39.40, Longitude: -88.80}, nil).
		Once()

	fx.locationRepo.EXPECT().
		UpdateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.UpdateLocation(ctx, 5, input)
	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", location.City)
	assert.Equal(t, 39.40, location.Latitude)
	assert.Equal(t, -88.80, location.Longitude)
}

func TestLocationService_UpdateLocation_GeocodeMiss_RecordUntouched(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	existing := storedLocation(5)
	input := &usecase.UpdateLocationInput{
		Country: strPtr("Unknownland9999"),
	}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, int64(5)).
		Return(existing, nil)

	// No UpdateLocation expectation: a miss must leave the row as-is.
	fx.geocoder.EXPECT().
		Geocode(ctx, "1 Main St, Springfield, Unknownland9999").
		Return(nil, service.ErrNoMatch)

	location, err := fx.service.UpdateLocation(ctx, 5, input)
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrGeocodingFailed, err)
}

func TestLocationService_DeleteLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().
		DeleteLocation(ctx, int64(7)).
		Return(nil)

	id, err := fx.service.DeleteLocation(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestLocationService_DeleteAllLocations(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().
		DeleteLocationsByShop(ctx, "test-shop.myshopify.com").
		Return(int64(3), nil).
		Once()

	count, err := fx.service.DeleteAllLocations(ctx, "test-shop.myshopify.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// A second sweep over the same shop finds nothing and still succeeds.
	fx.locationRepo.EXPECT().
		DeleteLocationsByShop(ctx, "test-shop.myshopify.com").
		Return(int64(0), nil).
		Once()

	count, err = fx.service.DeleteAllLocations(ctx, "test-shop.myshopify.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
