package service

import (
	"context"
	"fmt"
	"math"

	"saarthi-api/internal/models"

	"github.com/twpayne/go-polyline"
)

var routeLabels = []string{"Safest", "Balanced", "Fastest"}

// RouteScorer interface for dependency injection
type RouteScorer interface {
	CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.ScoredRoute, error)
}

// RouteSearchService turns two endpoints into labelled, scored route options
type RouteSearchService struct {
	geocoder Geocoder
	scorer   RouteScorer
}

// NewRouteSearchService creates a new route search service
func NewRouteSearchService(geocoder Geocoder, scorer RouteScorer) *RouteSearchService {
	return &RouteSearchService{geocoder: geocoder, scorer: scorer}
}

// SearchRoutes geocodes both addresses and plans routes between them
func (s *RouteSearchService) SearchRoutes(ctx context.Context, from, to string) (*models.RouteSearchResult, error) {
	start, err := s.geocoder.Geocode(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode start: %w", err)
	}

	end, err := s.geocoder.Geocode(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode destination: %w", err)
	}

	return s.PlanRoutes(ctx, start, end)
}

// PlanRoutes scores the routes between two known locations
func (s *RouteSearchService) PlanRoutes(ctx context.Context, start, end models.Location) (*models.RouteSearchResult, error) {
	if err := validateCoordinate(start.Latitude, start.Longitude); err != nil {
		return nil, err
	}
	if err := validateCoordinate(end.Latitude, end.Longitude); err != nil {
		return nil, err
	}

	scored, err := s.scorer.CalculateRoutes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	options := make([]models.RouteOption, 0, len(scored))
	for i, sr := range scored {
		options = append(options, NewRouteOption(i, sr))
	}

	return &models.RouteSearchResult{Start: start, End: end, Options: options}, nil
}

// NewRouteOption prepares the scored route at provider index i for display.
func NewRouteOption(i int, sr models.ScoredRoute) models.RouteOption {
	label := RouteLabel(i)
	score := sr.Safety.OverallScore
	return models.RouteOption{
		ID:                fmt.Sprintf("route-%d", i),
		Label:             label,
		Description:       label + " Route",
		SafetyLabel:       SafetyLabel(score),
		SafetyDescription: SafetyDescription(score),
		Advantages:        Advantages(score, i),
		Disadvantages:     Disadvantages(score, i),
		Distance:          fmt.Sprintf("%.1f km", sr.Route.DistanceMeters/1000),
		Duration:          fmt.Sprintf("%d mins", int(math.Round(sr.Route.DurationSeconds/60))),
		EncodedPolyline:   EncodePolyline(sr.Route.Coordinates),
		Route:             sr.Route,
		Safety:            sr.Safety,
	}
}

// RouteLabel names a route by its provider index.
func RouteLabel(i int) string {
	if i >= 0 && i < len(routeLabels) {
		return routeLabels[i]
	}
	return fmt.Sprintf("Alternative %d", i+1)
}

// SafetyLabel buckets an overall score.
func SafetyLabel(score int) string {
	switch {
	case score >= 80:
		return "Very Safe"
	case score >= 60:
		return "Moderately Safe"
	default:
		return "Use Caution"
	}
}

// SafetyDescription is the one-line verdict shown on a route card.
func SafetyDescription(score int) string {
	switch {
	case score >= 85:
		return "Very Safe Route"
	case score >= 70:
		return "Safe Route"
	case score >= 55:
		return "Moderately Safe"
	default:
		return "Use Caution"
	}
}

// Advantages lists the selling points of the route at provider index i.
func Advantages(score, i int) []string {
	var out []string
	if score >= 80 {
		out = append(out, "Well-lit areas throughout", "Frequent police patrols", "Good CCTV coverage")
	}
	if i == 0 {
		out = append(out, "Most popular route", "Well-maintained roads")
	}
	if score >= 70 {
		out = append(out, "Adequate street lighting", "Busy main roads")
	}
	if len(out) == 0 {
		return []string{"Direct route available"}
	}
	return out
}

// Disadvantages lists the drawbacks of the route at provider index i.
func Disadvantages(score, i int) []string {
	var out []string
	if score < 60 {
		out = append(out, "Some poorly lit areas", "Less crowded streets")
	}
	if i == 2 {
		out = append(out, "May pass through isolated areas")
	}
	if score < 70 {
		out = append(out, "Limited surveillance in some sections")
	}
	if len(out) == 0 {
		return []string{"Standard route precautions apply"}
	}
	return out
}

// EncodePolyline encodes coordinates as a precision-5 Google polyline.
func EncodePolyline(coords []models.Location) string {
	points := make([][]float64, len(coords))
	for i, c := range coords {
		points[i] = []float64{c.Latitude, c.Longitude}
	}
	return string(polyline.EncodeCoords(points))
}
