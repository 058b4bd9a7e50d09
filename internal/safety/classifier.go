package safety

import (
	"context"
	"strings"

	"saarthi-api/internal/models"

	"github.com/rs/zerolog/log"
)

// AddressLookup resolves a coordinate to address descriptors.
type AddressLookup interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error)
}

// AreaClassifier derives a coarse land-use category for a coordinate.
type AreaClassifier struct {
	lookup AddressLookup
	tables Tables
}

// NewAreaClassifier creates a classifier backed by reverse geocoding and the given tables
func NewAreaClassifier(lookup AddressLookup, tables Tables) *AreaClassifier {
	return &AreaClassifier{lookup: lookup, tables: tables}
}

// Classify always returns an area type. Keyword matches on the reverse-geocoded
// address win; otherwise the coordinate is tested against the known commercial areas.
func (a *AreaClassifier) Classify(ctx context.Context, lat, lon float64) models.AreaType {
	addr, err := a.lookup.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocoding failed, classifying by region")
		return a.classifyByRegion(lat, lon)
	}

	if areaType, ok := a.classifyByKeywords(addr); ok {
		return areaType
	}
	return a.classifyByRegion(lat, lon)
}

func (a *AreaClassifier) classifyByKeywords(addr *models.Address) (models.AreaType, bool) {
	if addr == nil {
		return "", false
	}

	var parts []string
	for _, field := range addr.Fields() {
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	text := strings.ToLower(strings.Join(parts, " "))

	switch {
	case containsAny(text, a.tables.CommercialKeywords):
		return models.AreaCommercial, true
	case containsAny(text, a.tables.ResidentialKeywords):
		return models.AreaResidential, true
	}
	return "", false
}

func (a *AreaClassifier) classifyByRegion(lat, lon float64) models.AreaType {
	if inAny(a.tables.CommercialAreas, lat, lon) {
		return models.AreaCommercial
	}
	return models.AreaMixed
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
