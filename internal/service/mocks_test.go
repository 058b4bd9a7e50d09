package service

import (
	"context"

	"saarthi-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.Location), args.Error(1)
}

// MockRouteProvider is a mock implementation of the RouteProvider interface
type MockRouteProvider struct {
	mock.Mock
}

func (m *MockRouteProvider) CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.Route, error) {
	args := m.Called(ctx, start, end)
	routes, _ := args.Get(0).([]models.Route)
	return routes, args.Error(1)
}

// MockFactorCollector is a mock implementation of the FactorCollector interface
type MockFactorCollector struct {
	mock.Mock
}

func (m *MockFactorCollector) Collect(ctx context.Context, lat, lon float64) (models.SafetyFactors, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(models.SafetyFactors), args.Error(1)
}

// MockRouteScorer is a mock implementation of the RouteScorer interface
type MockRouteScorer struct {
	mock.Mock
}

func (m *MockRouteScorer) CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.ScoredRoute, error) {
	args := m.Called(ctx, start, end)
	scored, _ := args.Get(0).([]models.ScoredRoute)
	return scored, args.Error(1)
}

// MockPinger is a mock implementation of the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func straightRoute(n int, distance, duration float64) models.Route {
	coords := make([]models.Location, n)
	for i := range coords {
		coords[i] = models.Location{
			Latitude:  19.0760 - float64(i)*0.0065,
			Longitude: 72.8777 - float64(i)*0.0024,
		}
	}
	return models.Route{Coordinates: coords, DistanceMeters: distance, DurationSeconds: duration}
}
