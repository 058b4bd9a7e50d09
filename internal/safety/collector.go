package safety

import (
	"context"
	"time"

	"saarthi-api/internal/models"

	"github.com/rs/zerolog/log"
)

// POI categories searched around each sampled point.
const (
	CategoryPolice   = "police station"
	CategoryHospital = "hospital medical center"
)

// defaultPOICount stands in for a POI count the provider could not deliver,
// including an empty result.
const defaultPOICount = 2

// Area safety composite.
const (
	areaSafetyBase          = 70
	policePointsEach        = 8
	policePointsMax         = 25
	hospitalPointsEach      = 7
	hospitalPointsMax       = 20
	commercialBonus         = 15
	residentialBonus        = 10
	incidentPenaltyEach     = 3
	incidentPenaltyMax      = 20
	heavyCongestionRatio    = 0.5
	moderateCongestionRatio = 0.7
)

// GeoProvider is the part of the mapping provider the collector consumes.
type GeoProvider interface {
	AddressLookup
	CountPOIs(ctx context.Context, category string, lat, lon float64) (int, error)
	TrafficFlow(ctx context.Context, lat, lon float64) (*models.TrafficFlow, error)
}

// Collector gathers the safety signal for single coordinates.
type Collector struct {
	provider   GeoProvider
	classifier *AreaClassifier
	tables     Tables
	now        func() time.Time
}

// CollectorOption customises a Collector.
type CollectorOption func(*Collector)

// WithClock sets the wall clock used by the peak-hour traffic heuristic.
func WithClock(now func() time.Time) CollectorOption {
	return func(c *Collector) { c.now = now }
}

// NewCollector creates a collector; area classification shares the same provider.
func NewCollector(provider GeoProvider, tables Tables, opts ...CollectorOption) *Collector {
	c := &Collector{
		provider:   provider,
		classifier: NewAreaClassifier(provider, tables),
		tables:     tables,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rawSignals is everything the provider calls produced for one point.
type rawSignals struct {
	police    signal[int]
	hospitals signal[int]
	traffic   signal[*models.TrafficFlow]
	area      models.AreaType
}

// Collect returns the safety factors at a coordinate. Provider failures never
// surface: each missing signal is replaced by its default in resolve. The only
// error is ctx.Err() once the caller has given up.
func (c *Collector) Collect(ctx context.Context, lat, lon float64) (models.SafetyFactors, error) {
	var raw rawSignals

	police, err := c.provider.CountPOIs(ctx, CategoryPolice, lat, lon)
	raw.police = observeCount(police, err)

	hospitals, err := c.provider.CountPOIs(ctx, CategoryHospital, lat, lon)
	raw.hospitals = observeCount(hospitals, err)

	flow, err := c.provider.TrafficFlow(ctx, lat, lon)
	raw.traffic = observe(flow, err)

	raw.area = c.classifier.Classify(ctx, lat, lon)

	if err := ctx.Err(); err != nil {
		return models.SafetyFactors{}, err
	}
	return c.resolve(lat, lon, raw), nil
}

// resolve applies the default for every failed signal and derives the sub-scores.
func (c *Collector) resolve(lat, lon float64, raw rawSignals) models.SafetyFactors {
	police := c.poiCount(CategoryPolice, raw.police)
	hospitals := c.poiCount(CategoryHospital, raw.hospitals)
	incidents := c.incidents(lat, lon, raw.traffic)

	return models.SafetyFactors{
		Lighting:          clamp(c.tables.Lighting.For(raw.area), 0, 100),
		PopulationDensity: clamp(c.tables.PopulationDensity.For(raw.area), 0, 100),
		PoliceStations:    police,
		Hospitals:         hospitals,
		RoadType:          c.roadSafety(lat, lon),
		TrafficIncidents:  incidents,
		AreaSafety:        areaSafety(police, hospitals, incidents, raw.area),
	}
}

func (c *Collector) poiCount(category string, s signal[int]) int {
	if !s.ok() {
		log.Warn().Err(s.err).Str("category", category).Str("failure", s.failure.String()).Msg("no poi count, using default")
		return defaultPOICount
	}
	return s.value
}

// incidents turns traffic flow into a severity in {0,1,2}. A rate-limited call
// yields 0; a missing endpoint or a transport failure falls back to the peak-hour heuristic.
func (c *Collector) incidents(lat, lon float64, s signal[*models.TrafficFlow]) int {
	switch s.failure {
	case failNone:
		return incidentsFromFlow(s.value)
	case failUnsupported, failTransport:
		log.Warn().Err(s.err).Str("failure", s.failure.String()).Msg("traffic flow unavailable, estimating from peak hours")
		return c.peakHourIncidents(lat, lon)
	default:
		log.Warn().Err(s.err).Str("failure", s.failure.String()).Msg("traffic flow failed, assuming no incidents")
		return 0
	}
}

func incidentsFromFlow(flow *models.TrafficFlow) int {
	if flow == nil {
		return 0
	}
	switch {
	case flow.CurrentSpeed < flow.FreeFlowSpeed*heavyCongestionRatio:
		return 2
	case flow.CurrentSpeed < flow.FreeFlowSpeed*moderateCongestionRatio:
		return 1
	}
	return 0
}

func (c *Collector) peakHourIncidents(lat, lon float64) int {
	if !inAny(c.tables.DenseMetros, lat, lon) {
		return 0
	}
	hour := c.now().Hour()
	for _, w := range c.tables.PeakHours {
		if hour >= w.Start && hour <= w.End {
			return 1
		}
	}
	return 0
}

// roadSafety is the best road-safety score among cities within range of the coordinate.
func (c *Collector) roadSafety(lat, lon float64) int {
	best := c.tables.DefaultRoadSafety
	for _, city := range c.tables.Cities {
		if distanceKm(lat, lon, city.Latitude, city.Longitude) < c.tables.CityRadiusKm {
			best = max(best, city.RoadSafety)
		}
	}
	return clamp(best, 0, 100)
}

func areaSafety(police, hospitals, incidents int, area models.AreaType) int {
	score := areaSafetyBase
	if police > 0 {
		score += min(policePointsMax, police*policePointsEach)
	}
	if hospitals > 0 {
		score += min(hospitalPointsMax, hospitals*hospitalPointsEach)
	}

	switch area {
	case models.AreaCommercial:
		score += commercialBonus
	case models.AreaResidential:
		score += residentialBonus
	}

	if incidents > 0 {
		score -= min(incidentPenaltyMax, incidents*incidentPenaltyEach)
	}
	return clamp(score, 0, 100)
}
