// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location-related database operations.
// All listing and bulk operations are scoped by the owning shop; direct-id
// operations are not, since ids are globally unique.
type LocationRepository interface {
	// CreateLocation persists a new location. The store assigns the id and
	// both timestamps, which are written back onto the entity.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique id.
	// Returns ErrLocationNotFound if no such row exists.
	FindLocationByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindLocationsByShop retrieves all locations for a shop, newest-created first.
	FindLocationsByShop(ctx context.Context, shop string) ([]*entity.Location, error)

	// UpdateLocation persists the merged state of an existing location.
	// There is no optimistic-concurrency check; concurrent updates to the
	// same row are last-write-wins.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// DeleteLocation removes a location by id.
	// Returns ErrLocationNotFound if no row was removed.
	DeleteLocation(ctx context.Context, id int64) error

	// DeleteLocationsByShop removes every location for a shop and returns
	// the number of rows removed. Zero is a valid outcome.
	DeleteLocationsByShop(ctx context.Context, shop string) (int64, error)
}
