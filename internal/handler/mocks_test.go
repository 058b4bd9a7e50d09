package handler

import (
	"context"

	"saarthi-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, address string) (models.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.Location), args.Error(1)
}

// MockPointSafetyService is a mock implementation of the PointSafetyService interface
type MockPointSafetyService struct {
	mock.Mock
}

func (m *MockPointSafetyService) Factors(ctx context.Context, lat, lon float64) (models.SafetyFactors, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(models.SafetyFactors), args.Error(1)
}

// MockRouteSearchService is a mock implementation of the RouteSearchService interface
type MockRouteSearchService struct {
	mock.Mock
}

func (m *MockRouteSearchService) SearchRoutes(ctx context.Context, from, to string) (*models.RouteSearchResult, error) {
	args := m.Called(ctx, from, to)
	result, _ := args.Get(0).(*models.RouteSearchResult)
	return result, args.Error(1)
}

func (m *MockRouteSearchService) PlanRoutes(ctx context.Context, start, end models.Location) (*models.RouteSearchResult, error) {
	args := m.Called(ctx, start, end)
	result, _ := args.Get(0).(*models.RouteSearchResult)
	return result, args.Error(1)
}

// MockProviderStatusService is a mock implementation of the ProviderStatusService interface
type MockProviderStatusService struct {
	mock.Mock
}

func (m *MockProviderStatusService) Status(ctx context.Context) models.ProviderStatus {
	args := m.Called(ctx)
	return args.Get(0).(models.ProviderStatus)
}
