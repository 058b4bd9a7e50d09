package tomtom

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"saarthi-api/internal/models"
)

const probeAddress = "mumbai"

// Geocode resolves a free-text address to the best matching location.
func (c *Client) Geocode(ctx context.Context, address string) (models.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Location{}, errors.New("tomtom: geocode: address cannot be empty")
	}

	query := url.Values{}
	query.Set("limit", "1")
	if c.countrySet != "" {
		query.Set("countrySet", c.countrySet)
	}

	var resp geocodeResponse
	if err := c.get(ctx, "geocode", "/search/2/geocode/"+url.PathEscape(address)+".json", query, &resp); err != nil {
		return models.Location{}, err
	}

	if len(resp.Results) == 0 {
		return models.Location{}, fmt.Errorf("tomtom: geocode %q: %w", address, models.ErrNoResults)
	}

	result := resp.Results[0]
	loc := models.Location{
		Latitude:  result.Position.Lat,
		Longitude: result.Position.Lon,
		Address:   result.Address.FreeformAddress,
	}
	if loc.Address == "" {
		loc.Address = address
	}
	return loc, nil
}

// ReverseGeocode returns the address descriptors of the first match for a coordinate.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	var resp reverseGeocodeResponse
	if err := c.get(ctx, "reverse geocode", "/search/2/reverseGeocode/"+formatPoint(lat, lon)+".json", nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Addresses) == 0 || resp.Addresses[0].Address == nil {
		return nil, fmt.Errorf("tomtom: reverse geocode: %w: no address in response", models.ErrMalformedResponse)
	}

	a := resp.Addresses[0].Address
	return &models.Address{
		FreeformAddress:         a.FreeformAddress,
		Street:                  a.Street,
		StreetName:              a.StreetName,
		LocalName:               a.LocalName,
		Municipality:            a.Municipality,
		MunicipalitySubdivision: a.MunicipalitySubdivision,
		CountrySubdivision:      a.CountrySubdivision,
	}, nil
}

// Ping checks the API key by geocoding a fixed probe address.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("limit", "1")

	var resp geocodeResponse
	return c.get(ctx, "ping", "/search/2/geocode/"+probeAddress+".json", query, &resp)
}
