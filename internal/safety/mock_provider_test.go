package safety

import (
	"context"

	"saarthi-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeoProvider is a mock implementation of the GeoProvider interface
type MockGeoProvider struct {
	mock.Mock
}

func (m *MockGeoProvider) CountPOIs(ctx context.Context, category string, lat, lon float64) (int, error) {
	args := m.Called(ctx, category, lat, lon)
	return args.Int(0), args.Error(1)
}

func (m *MockGeoProvider) TrafficFlow(ctx context.Context, lat, lon float64) (*models.TrafficFlow, error) {
	args := m.Called(ctx, lat, lon)
	flow, _ := args.Get(0).(*models.TrafficFlow)
	return flow, args.Error(1)
}

func (m *MockGeoProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	args := m.Called(ctx, lat, lon)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}
