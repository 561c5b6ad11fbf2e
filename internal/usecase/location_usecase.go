package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// ManualCoordinates is a caller-supplied coordinate pair that bypasses the
// geocoding lookup entirely. The pair is persisted verbatim; no range
// validation beyond "is numeric".
type ManualCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateLocationInput represents the input for creating a new location.
// When Manual is nil the address fields are geocoded; when set, geocoding is
// skipped and the supplied pair is stored as-is. Modeling the bypass as an
// explicit branch keeps the "coordinates always consistent with the stored
// address unless manually overridden" invariant visible in the type.
type CreateLocationInput struct {
	Shop    string             `json:"shop"`
	Name    string             `json:"name"`
	Address string             `json:"address"`
	City    string             `json:"city"`
	Country string             `json:"country"`
	ZipCode *string            `json:"zip_code,omitempty"`
	Phone   *string            `json:"phone,omitempty"`
	Manual  *ManualCoordinates `json:"manual_coordinates,omitempty"`
}

// UpdateLocationInput represents the input for updating an existing location.
// Only non-nil fields are merged. Changing any of address/city/country
// forces a re-geocode of the merged composite address.
type UpdateLocationInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// LocationUsecase defines the interface for location management use cases
type LocationUsecase interface {
	// ListLocations retrieves all locations for a shop, newest-created first.
	ListLocations(ctx context.Context, shop string) ([]*entity.Location, error)

	// CreateLocation validates the input, resolves coordinates (by geocoding
	// or the manual branch), and persists the record. A row is only written
	// after coordinates have been resolved.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)

	// UpdateLocation merges the provided fields into the stored record,
	// re-geocoding first when an address-bearing field changed. The stored
	// record is untouched when re-geocoding fails.
	UpdateLocation(ctx context.Context, id int64, input *UpdateLocationInput) (*entity.Location, error)

	// DeleteLocation removes one location and returns its id.
	DeleteLocation(ctx context.Context, id int64) (int64, error)

	// DeleteAllLocations removes every location for a shop and returns the
	// count removed. Zero is a valid, non-error outcome.
	DeleteAllLocations(ctx context.Context, shop string) (int64, error)
}
