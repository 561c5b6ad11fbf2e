package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"
	mockSvc "locator/internal/mocks/service"
	"locator/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
)

// mockAnyLocation matches any *entity.Location argument.
func mockAnyLocation() interface{} {
	return mock.AnythingOfType("*entity.Location")
}

// testFixedTime is the frozen instant used by every service test.
var testFixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type locationServiceFixture struct {
	locationRepo *mockRepo.MockLocationRepository
	geocoder     *mockSvc.MockGeocoder
	clock        *clockwork.FakeClock
	service      usecase.LocationUsecase
}

func createTestLocationService(t *testing.T) *locationServiceFixture {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	clock := clockwork.NewFakeClockAt(testFixedTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &locationServiceFixture{
		locationRepo: locationRepo,
		geocoder:     geocoder,
		clock:        clock,
		service:      NewLocationService(locationRepo, geocoder, clock, logger),
	}
}

func storedLocation(id int64) *entity.Location {
	return &entity.Location{
		ID:        id,
		Shop:      "test-shop.myshopify.com",
		Name:      "HQ",
		Address:   "1 Main St",
		City:      "Springfield",
		Country:   "US",
		Latitude:  39.78,
		Longitude: -89.65,
		CreatedAt: testFixedTime.Add(-24 * time.Hour),
		UpdatedAt: testFixedTime.Add(-24 * time.Hour),
	}
}

func strPtr(s string) *string {
	return &s
}
