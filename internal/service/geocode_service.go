package service

import (
	"context"
	"fmt"
	"strings"

	"saarthi-api/internal/models"
)

// GeoCodeService resolves free-text addresses to coordinates
type GeoCodeService struct {
	geocoder Geocoder
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(geocoder Geocoder) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder}
}

// Geocode returns the best match for address
func (s *GeoCodeService) Geocode(ctx context.Context, address string) (models.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Location{}, fmt.Errorf("service: address cannot be empty: %w", models.ErrInvalidInput)
	}

	location, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return models.Location{}, fmt.Errorf("service: failed to geocode %q: %w", address, err)
	}

	return location, nil
}
