package impl

import (
	"context"
	"testing"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLocationService_UpdateLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.UpdateLocationInput{}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, int64(99)).
		Return(nil, repository.ErrLocationNotFound)

	location, err := fx.service.UpdateLocation(ctx, 99, input)
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().
		DeleteLocation(ctx, int64(99)).
		Return(repository.ErrLocationNotFound)

	id, err := fx.service.DeleteLocation(ctx, 99)
	assert.Zero(t, id)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestLocationService_ListLocations_RepositoryError(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	repoErr := errors.New("connection reset")

	fx.locationRepo.EXPECT().
		FindLocationsByShop(ctx, "test-shop.myshopify.com").
		Return(nil, repoErr)

	locations, err := fx.service.ListLocations(ctx, "test-shop.myshopify.com")
	assert.Nil(t, locations)
	assert.ErrorIs(t, err, repoErr)
}

func TestLocationService_CreateLocation_RepositoryError(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	repoErr := errors.New("connection reset")
	input := &usecase.CreateLocationInput{
		Shop:    "test-shop.myshopify.com",
		Name:    "HQ",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
		Manual:  &usecase.ManualCoordinates{Latitude: 1, Longitude: 2},
	}

	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mockAnyLocation()).
		Return(repoErr)

	location, err := fx.service.CreateLocation(ctx, input)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, repoErr)
}

func TestLocationService_DeleteAllLocations_RepositoryError(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	repoErr := errors.New("connection reset")

	fx.locationRepo.EXPECT().
		DeleteLocationsByShop(ctx, "test-shop.myshopify.com").
		Return(int64(0), repoErr)

	count, err := fx.service.DeleteAllLocations(ctx, "test-shop.myshopify.com")
	assert.Zero(t, count)
	assert.ErrorIs(t, err, repoErr)
}
