package service

import (
	"context"
	"testing"

	"saarthi-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPointSafetyService_Factors(t *testing.T) {
	factors := models.SafetyFactors{
		Lighting: 90, PopulationDensity: 90, PoliceStations: 3, Hospitals: 1,
		RoadType: 80, TrafficIncidents: 2, AreaSafety: 100,
	}

	tests := []struct {
		name        string
		lat         float64
		lon         float64
		callsMock   bool
		mockError   error
		expectedErr error
	}{
		{name: "latitude too low", lat: -90.1, lon: 72.8, expectedErr: models.ErrInvalidInput},
		{name: "latitude too high", lat: 90.1, lon: 72.8, expectedErr: models.ErrInvalidInput},
		{name: "longitude too low", lat: 19, lon: -180.5, expectedErr: models.ErrInvalidInput},
		{name: "longitude too high", lat: 19, lon: 180.5, expectedErr: models.ErrInvalidInput},
		{name: "boundary coordinate", lat: 90, lon: -180, callsMock: true},
		{name: "successful collection", lat: 19.0596, lon: 72.8295, callsMock: true},
		{name: "cancelled", lat: 19.0596, lon: 72.8295, callsMock: true, mockError: context.Canceled, expectedErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := new(MockFactorCollector)
			svc := NewPointSafetyService(collector)

			if tt.callsMock {
				collector.On("Collect", mock.Anything, tt.lat, tt.lon).Return(factors, tt.mockError)
			}

			result, err := svc.Factors(context.Background(), tt.lat, tt.lon)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, factors, result)
			}
			collector.AssertExpectations(t)
		})
	}
}
