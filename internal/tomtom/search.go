package tomtom

import (
	"context"
	"net/url"
	"strconv"

	"saarthi-api/internal/models"
)

const (
	// POIRadiusMeters is the search radius around a sampled point.
	POIRadiusMeters = 5000
	// POILimit caps results per category; only the count is used.
	POILimit = 3

	trafficZoom = "12"
)

// CountPOIs returns how many points of interest of a category lie near a coordinate, up to POILimit.
func (c *Client) CountPOIs(ctx context.Context, category string, lat, lon float64) (int, error) {
	query := url.Values{}
	query.Set("lat", formatCoord(lat))
	query.Set("lon", formatCoord(lon))
	query.Set("radius", strconv.Itoa(POIRadiusMeters))
	query.Set("limit", strconv.Itoa(POILimit))

	var resp poiSearchResponse
	if err := c.get(ctx, "poi search", "/search/2/poiSearch/"+url.PathEscape(category)+".json", query, &resp); err != nil {
		return 0, err
	}

	n := len(resp.Results)
	if n > POILimit {
		n = POILimit
	}
	return n, nil
}

// TrafficFlow returns current and free-flow speed on the road segment nearest to a coordinate.
// A response without flow data yields nil and no error.
func (c *Client) TrafficFlow(ctx context.Context, lat, lon float64) (*models.TrafficFlow, error) {
	query := url.Values{}
	query.Set("point", formatPoint(lat, lon))
	query.Set("zoom", trafficZoom)

	var resp trafficFlowResponse
	if err := c.get(ctx, "traffic flow", "/traffic/services/4/flowSegmentData/absolute/10/json", query, &resp); err != nil {
		return nil, err
	}

	if resp.FlowSegmentData == nil {
		return nil, nil
	}
	return &models.TrafficFlow{
		CurrentSpeed:  resp.FlowSegmentData.CurrentSpeed,
		FreeFlowSpeed: resp.FlowSegmentData.FreeFlowSpeed,
	}, nil
}
