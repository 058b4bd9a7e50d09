package service

import (
	"context"
	"fmt"
	"time"

	"saarthi-api/internal/models"
	"saarthi-api/internal/pacing"
	"saarthi-api/internal/safety"

	"github.com/rs/zerolog/log"
)

// DefaultPointDelay separates factor collection for consecutive sample points.
const DefaultPointDelay = 500 * time.Millisecond

// RoutingError means no candidate route could be obtained. It is the only
// failure that aborts a whole pipeline run.
type RoutingError struct {
	Start models.Location
	End   models.Location
	Err   error
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("service: route calculation from (%.4f,%.4f) to (%.4f,%.4f) failed: %v",
		e.Start.Latitude, e.Start.Longitude, e.End.Latitude, e.End.Longitude, e.Err)
}

func (e *RoutingError) Unwrap() error {
	return e.Err
}

// RouteProvider interface for dependency injection
type RouteProvider interface {
	CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.Route, error)
}

// FactorCollector interface for dependency injection
type FactorCollector interface {
	Collect(ctx context.Context, lat, lon float64) (models.SafetyFactors, error)
}

// RouteService scores every candidate route between two locations
type RouteService struct {
	routes      RouteProvider
	collector   FactorCollector
	sampleCount int
	pointDelay  time.Duration
}

// RouteServiceOption configures a RouteService
type RouteServiceOption func(*RouteService)

// WithSampleCount sets how many points are scored per route.
func WithSampleCount(n int) RouteServiceOption {
	return func(s *RouteService) { s.sampleCount = n }
}

// WithPointDelay sets the pause between sample points. Zero disables it.
func WithPointDelay(d time.Duration) RouteServiceOption {
	return func(s *RouteService) { s.pointDelay = d }
}

// NewRouteService creates a new route scoring service
func NewRouteService(routes RouteProvider, collector FactorCollector, opts ...RouteServiceOption) *RouteService {
	s := &RouteService{
		routes:      routes,
		collector:   collector,
		sampleCount: safety.DefaultSampleCount,
		pointDelay:  DefaultPointDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateRoutes returns every provider route paired with its safety score,
// in the provider's order. Routes are scored one after another.
func (s *RouteService) CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.ScoredRoute, error) {
	routes, err := s.routes.CalculateRoutes(ctx, start, end)
	if err != nil {
		return nil, &RoutingError{Start: start, End: end, Err: err}
	}
	if len(routes) == 0 {
		return nil, &RoutingError{Start: start, End: end, Err: models.ErrNoResults}
	}

	scored := make([]models.ScoredRoute, 0, len(routes))
	for i, route := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score, err := s.scoreRoute(ctx, route)
		if err != nil {
			return nil, fmt.Errorf("service: scoring route %d: %w", i, err)
		}

		log.Debug().
			Int("route", i).
			Int("overall_score", score.OverallScore).
			Float64("distance_m", route.DistanceMeters).
			Msg("route scored")

		scored = append(scored, models.ScoredRoute{Route: route, Safety: score})
	}

	return scored, nil
}

// scoreRoute fails only when ctx is done.
func (s *RouteService) scoreRoute(ctx context.Context, route models.Route) (models.RouteSafetyScore, error) {
	points := safety.Sample(route.Coordinates, s.sampleCount)

	factors := make([]models.SafetyFactors, 0, len(points))
	for i, p := range points {
		if i > 0 {
			if err := pacing.Sleep(ctx, s.pointDelay); err != nil {
				return models.RouteSafetyScore{}, err
			}
		}

		f, err := s.collector.Collect(ctx, p.Latitude, p.Longitude)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.RouteSafetyScore{}, ctxErr
			}
			log.Warn().Err(err).
				Float64("lat", p.Latitude).
				Float64("lon", p.Longitude).
				Msg("factor collection failed, using defaults")
			f = safety.DefaultFactors()
		}
		factors = append(factors, f)
	}

	return safety.Aggregate(factors), nil
}
