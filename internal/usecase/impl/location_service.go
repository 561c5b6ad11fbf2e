// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/jonboulle/clockwork"
)

type locationService struct {
	locationRepo repository.LocationRepository
	geocoder     service.Geocoder
	clock        clockwork.Clock
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	geocoder service.Geocoder,
	clock clockwork.Clock,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		geocoder:     geocoder,
		clock:        clock,
		logger:       logger,
	}
}

// ListLocations retrieves all locations for a shop
func (s *locationService) ListLocations(ctx context.Context, shop string) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindLocationsByShop(ctx, shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by shop")
	}

	return locations, nil
}

// CreateLocation adds a new location for a shop. Validation and coordinate
// resolution both happen before any storage write: a geocoding miss means no
// row is ever created.
func (s *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	location := &entity.Location{
		Shop:      strings.TrimSpace(input.Shop),
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		City:      strings.TrimSpace(input.City),
		Country:   strings.TrimSpace(input.Country),
		ZipCode:   input.ZipCode,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.Manual != nil {
		// Manual branch: the caller supplied the pair, skip the lookup.
		location.Latitude = input.Manual.Latitude
		location.Longitude = input.Manual.Longitude
	} else {
		coords, err := s.geocoder.Geocode(ctx, location.AddressText())
		if err != nil {
			if errors.Is(err, service.ErrNoMatch) {
				return nil, domainerrors.ErrGeocodingFailed
			}

			return nil, errors.Wrap(err, "failed to geocode address")
		}
		location.Latitude = coords.Latitude
		location.Longitude = coords.Longitude
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

// UpdateLocation merges the provided fields into an existing location.
// When any address-bearing field changes, the merged composite address is
// re-geocoded before anything is written; a miss leaves the stored record
// untouched.
func (s *locationService) UpdateLocation(ctx context.Context, id int64, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	if addressChanged(input) {
		address := mergeField(input.Address, location.Address)
		city := mergeField(input.City, location.City)
		country := mergeField(input.Country, location.Country)
		composite := fmt.Sprintf("%s, %s, %s", address, city, country)

		coords, err := s.geocoder.Geocode(ctx, composite)
		if err != nil {
			if errors.Is(err, service.ErrNoMatch) {
				return nil, domainerrors.ErrGeocodingFailed
			}

			return nil, errors.Wrap(err, "failed to geocode updated address")
		}

		location.Latitude = coords.Latitude
		location.Longitude = coords.Longitude
	}

	s.applyLocationUpdates(location, input)

	if err := s.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

// DeleteLocation deletes one location by id and returns the removed id
func (s *locationService) DeleteLocation(ctx context.Context, id int64) (int64, error) {
	if err := s.locationRepo.DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return 0, domainerrors.ErrLocationNotFound
		}

		return 0, errors.Wrap(err, "failed to delete location")
	}

	return id, nil
}

// DeleteAllLocations removes every location for a shop, e.g. on uninstall
func (s *locationService) DeleteAllLocations(ctx context.Context, shop string) (int64, error) {
	count, err := s.locationRepo.DeleteLocationsByShop(ctx, shop)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete locations by shop")
	}

	s.logger.Info("Removed all locations for shop",
		slog.String("shop", shop),
		slog.Int64("count", count),
	)

	return count, nil
}

// applyLocationUpdates applies the update input to a location
func (s *locationService) applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) {
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.City != nil {
		location.City = *input.City
	}
	if input.Country != nil {
		location.Country = *input.Country
	}
	if input.ZipCode != nil {
		location.ZipCode = input.ZipCode
	}
	if input.Phone != nil {
		location.Phone = input.Phone
	}
	location.UpdatedAt = s.clock.Now()
}

// validateCreateInput checks the required descriptive fields. The shop key
// comes from the authenticated surface but is validated anyway since every
// query is scoped by it.
func validateCreateInput(input *usecase.CreateLocationInput) error {
	required := []string{input.Shop, input.Name, input.Address, input.City, input.Country}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return domainerrors.ErrValidationFailed
		}
	}

	return nil
}

// addressChanged reports whether any address-bearing field is present in the
// partial input, which mandates re-geocoding.
func addressChanged(input *usecase.UpdateLocationInput) bool {
	return input.Address != nil || input.City != nil || input.Country != nil
}

// mergeField picks the new value where supplied and the stored one otherwise.
func mergeField(updated *string, existing string) string {
	if updated != nil {
		return *updated
	}

	return existing
}
