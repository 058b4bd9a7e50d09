package service

import (
	"context"
	"fmt"

	"saarthi-api/internal/models"
)

// PointSafetyService scores a single coordinate
type PointSafetyService struct {
	collector FactorCollector
}

// NewPointSafetyService creates a new point safety service
func NewPointSafetyService(collector FactorCollector) *PointSafetyService {
	return &PointSafetyService{collector: collector}
}

// Factors collects the safety factors at lat, lon
func (s *PointSafetyService) Factors(ctx context.Context, lat, lon float64) (models.SafetyFactors, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return models.SafetyFactors{}, err
	}

	factors, err := s.collector.Collect(ctx, lat, lon)
	if err != nil {
		return models.SafetyFactors{}, fmt.Errorf("service: failed to collect safety factors: %w", err)
	}

	return factors, nil
}

func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("service: invalid latitude: %f: %w", lat, models.ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("service: invalid longitude: %f: %w", lon, models.ErrInvalidInput)
	}
	return nil
}
