package postgres

import (
	"context"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new location for a shop.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationCreateFailed.WrapMessage("missing required location information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationCreateFailed.WrapMessage("invalid shop reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique id.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByShop retrieves all locations for a shop, newest-created first.
func (repo *locationRepository) FindLocationsByShop(ctx context.Context, shop string) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("shop = ?", shop).
		Order("created_at DESC").
		Find(&locationModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by shop")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// UpdateLocation persists the merged state of an existing location.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationUpdateFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	// Update the entity with the bumped timestamp
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// DeleteLocation removes a location by its id.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	// If no rows were affected, it means the location was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteLocationsByShop removes every location for a shop, e.g. on app
// uninstall, and returns the number of rows removed.
func (repo *locationRepository) DeleteLocationsByShop(ctx context.Context, shop string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("shop = ?", shop).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete locations by shop")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Shop:      data.Shop,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		Country:   data.Country,
		ZipCode:   data.ZipCode,
		Phone:     data.Phone,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Shop:      data.Shop,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		Country:   data.Country,
		ZipCode:   data.ZipCode,
		Phone:     data.Phone,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
