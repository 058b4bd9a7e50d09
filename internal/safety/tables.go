package safety

import (
	"fmt"

	"saarthi-api/internal/models"

	"github.com/paulmach/orb"
	"github.com/spf13/viper"
)

// Bounds is a named latitude/longitude rectangle.
type Bounds struct {
	Name  string  `mapstructure:"name"`
	North float64 `mapstructure:"north"`
	South float64 `mapstructure:"south"`
	East  float64 `mapstructure:"east"`
	West  float64 `mapstructure:"west"`
}

// Contains reports whether the coordinate lies inside the rectangle, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	bound := orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
	return bound.Contains(orb.Point{lon, lat})
}

// CityProfile is a city centre with its baseline road-safety score.
type CityProfile struct {
	Name       string  `mapstructure:"name"`
	Latitude   float64 `mapstructure:"latitude"`
	Longitude  float64 `mapstructure:"longitude"`
	RoadSafety int     `mapstructure:"road_safety"`
}

// HourWindow is an inclusive range of wall-clock hours.
type HourWindow struct {
	Start int `mapstructure:"start"`
	End   int `mapstructure:"end"`
}

// ScoreTable maps an area type to a 0-100 score.
type ScoreTable struct {
	Commercial  int `mapstructure:"commercial"`
	Residential int `mapstructure:"residential"`
	Mixed       int `mapstructure:"mixed"`
	Default     int `mapstructure:"default"`
}

// For returns the score for an area type, or Default for unknown types.
func (s ScoreTable) For(t models.AreaType) int {
	switch t {
	case models.AreaCommercial:
		return s.Commercial
	case models.AreaResidential:
		return s.Residential
	case models.AreaMixed:
		return s.Mixed
	}
	return s.Default
}

func (s ScoreTable) isZero() bool {
	return s == ScoreTable{}
}

// Tables holds the static lookup data behind the heuristics.
type Tables struct {
	CommercialKeywords  []string      `mapstructure:"commercial_keywords"`
	ResidentialKeywords []string      `mapstructure:"residential_keywords"`
	CommercialAreas     []Bounds      `mapstructure:"commercial_areas"`
	DenseMetros         []Bounds      `mapstructure:"dense_metros"`
	PeakHours           []HourWindow  `mapstructure:"peak_hours"`
	Cities              []CityProfile `mapstructure:"cities"`
	CityRadiusKm        float64       `mapstructure:"city_radius_km"`
	DefaultRoadSafety   int           `mapstructure:"default_road_safety"`
	Lighting            ScoreTable    `mapstructure:"lighting"`
	PopulationDensity   ScoreTable    `mapstructure:"population_density"`
}

var mumbai = Bounds{Name: "Mumbai", North: 19.3, South: 18.9, East: 72.9, West: 72.7}

// DefaultTables returns the built-in heuristic data.
func DefaultTables() Tables {
	return Tables{
		CommercialKeywords: []string{
			"market", "mall", "commercial", "shopping", "mg road", "main road",
			"corporate", "business", "trade", "shop", "store", "plaza", "complex",
			"center", "centre", "business park", "industrial", "trade center",
			"kurla", "bandra", "express", "highway", "link road", "sea link",
		},
		ResidentialKeywords: []string{
			"residential", "colony", "society", "nagar", "vihar", "enclave",
			"apartment", "housing", "sector", "block", "phase", "estate",
			"villa", "residency", "home", "house",
		},
		CommercialAreas: []Bounds{mumbai},
		DenseMetros:     []Bounds{mumbai},
		PeakHours: []HourWindow{
			{Start: 7, End: 11},
			{Start: 17, End: 21},
		},
		Cities: []CityProfile{
			{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090, RoadSafety: 85},
			{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, RoadSafety: 80},
			{Name: "Bangalore", Latitude: 12.9716, Longitude: 77.5946, RoadSafety: 88},
			{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707, RoadSafety: 82},
			{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639, RoadSafety: 80},
			{Name: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867, RoadSafety: 85},
			{Name: "Jaipur", Latitude: 26.9124, Longitude: 75.7873, RoadSafety: 80},
			{Name: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714, RoadSafety: 82},
		},
		CityRadiusKm:      50,
		DefaultRoadSafety: 75,
		Lighting: ScoreTable{
			Commercial:  90,
			Residential: 75,
			Mixed:       65,
			Default:     55,
		},
		PopulationDensity: ScoreTable{
			Commercial:  90,
			Residential: 80,
			Mixed:       70,
			Default:     60,
		},
	}
}

// LoadTables reads a YAML (or any viper-supported) file and overlays every
// non-empty entry on DefaultTables. An empty path returns the defaults.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return tables, fmt.Errorf("safety: failed to read heuristics file: %w", err)
	}

	var override Tables
	if err := v.Unmarshal(&override); err != nil {
		return tables, fmt.Errorf("safety: failed to decode heuristics file: %w", err)
	}

	tables.overlay(override)
	return tables, nil
}

func (t *Tables) overlay(o Tables) {
	if len(o.CommercialKeywords) > 0 {
		t.CommercialKeywords = o.CommercialKeywords
	}
	if len(o.ResidentialKeywords) > 0 {
		t.ResidentialKeywords = o.ResidentialKeywords
	}
	if len(o.CommercialAreas) > 0 {
		t.CommercialAreas = o.CommercialAreas
	}
	if len(o.DenseMetros) > 0 {
		t.DenseMetros = o.DenseMetros
	}
	if len(o.PeakHours) > 0 {
		t.PeakHours = o.PeakHours
	}
	if len(o.Cities) > 0 {
		t.Cities = o.Cities
	}
	if o.CityRadiusKm > 0 {
		t.CityRadiusKm = o.CityRadiusKm
	}
	if o.DefaultRoadSafety > 0 {
		t.DefaultRoadSafety = o.DefaultRoadSafety
	}
	if !o.Lighting.isZero() {
		t.Lighting = o.Lighting
	}
	if !o.PopulationDensity.isZero() {
		t.PopulationDensity = o.PopulationDensity
	}
}
