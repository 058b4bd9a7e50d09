package tomtom

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"saarthi-api/internal/models"
)

// MaxAlternatives is the number of routes requested beyond the primary one.
const MaxAlternatives = 2

// CalculateRoutes asks for the fastest car route between two points plus alternatives.
// Routes are returned in provider order.
func (c *Client) CalculateRoutes(ctx context.Context, start, end models.Location) ([]models.Route, error) {
	query := url.Values{}
	query.Set("travelMode", "car")
	query.Set("routeType", "fastest")
	query.Set("maxAlternatives", strconv.Itoa(MaxAlternatives))

	path := fmt.Sprintf("/routing/1/calculateRoute/%s:%s/json",
		formatPoint(start.Latitude, start.Longitude),
		formatPoint(end.Latitude, end.Longitude))

	var resp routeResponse
	if err := c.get(ctx, "calculate route", path, query, &resp); err != nil {
		return nil, err
	}

	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("tomtom: calculate route: %w", models.ErrNoResults)
	}

	routes := make([]models.Route, 0, len(resp.Routes))
	for _, r := range resp.Routes {
		routes = append(routes, models.Route{
			Coordinates:     joinLegs(r.Legs),
			DistanceMeters:  r.Summary.LengthInMeters,
			DurationSeconds: r.Summary.TravelTimeInSeconds,
			Summary: models.RouteSummary{
				LengthInMeters:        r.Summary.LengthInMeters,
				TravelTimeInSeconds:   r.Summary.TravelTimeInSeconds,
				TrafficDelayInSeconds: r.Summary.TrafficDelayInSeconds,
				DepartureTime:         r.Summary.DepartureTime,
				ArrivalTime:           r.Summary.ArrivalTime,
			},
		})
	}
	return routes, nil
}

// joinLegs concatenates leg points in travel order. Consecutive identical
// points, such as a leg starting where the previous one ended, are kept once.
func joinLegs(legs []routeLeg) []models.Location {
	var coords []models.Location
	for _, leg := range legs {
		for _, p := range leg.Points {
			loc := models.Location{Latitude: p.Latitude, Longitude: p.Longitude}
			if n := len(coords); n > 0 && coords[n-1] == loc {
				continue
			}
			coords = append(coords, loc)
		}
	}
	return coords
}
