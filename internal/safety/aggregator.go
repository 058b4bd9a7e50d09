package safety

import (
	"math"

	"saarthi-api/internal/models"
)

// ScoreBoost is applied to the weighted sum before clamping.
const ScoreBoost = 1.10

// DefaultOverallScore is reported for a route with no sampled points.
const DefaultOverallScore = 70

// Factor weights, in the order of factorVector. They are applied to the count
// fields exactly as to the percentage fields.
var factorWeights = [7]float64{
	0.15, // lighting
	0.12, // population density
	0.18, // police stations
	0.12, // hospitals
	0.20, // road type
	0.08, // traffic incidents
	0.15, // area safety
}

const (
	warnNoPolice     = "Limited police presence in this area"
	warnIncidents    = "Higher than average traffic incidents reported"
	warnLighting     = "Area may have limited street lighting"
	warnNoHospitals  = "No hospitals in immediate vicinity"
	warnNoSafetyData = "Limited safety data available for this route"

	recommendMainRoads   = "Stay on main roads with more traffic"
	recommendIncidents   = "Be aware of recent traffic incidents in area"
	recommendDaylight    = "Consider traveling during daylight hours"
	recommendContacts    = "Keep emergency contacts handy"
	recommendGenerallyOK = "Route appears generally safe"
)

// DataSources returns the provider subsystems consulted for every score.
func DataSources() []string {
	return []string{
		"TomTom Search API - Points of Interest",
		"TomTom Traffic API - Incident Data",
		"TomTom Geocoding API - Area Classification",
		"TomTom Routing API - Road Infrastructure",
	}
}

// DefaultFactors is substituted for a sample point whose factors could not be collected.
func DefaultFactors() models.SafetyFactors {
	return models.SafetyFactors{
		Lighting:          70,
		PopulationDensity: 70,
		PoliceStations:    2,
		Hospitals:         2,
		RoadType:          70,
		TrafficIncidents:  0,
		AreaSafety:        70,
	}
}

func factorVector(f models.SafetyFactors) [7]float64 {
	return [7]float64{
		float64(f.Lighting),
		float64(f.PopulationDensity),
		float64(f.PoliceStations),
		float64(f.Hospitals),
		float64(f.RoadType),
		float64(f.TrafficIncidents),
		float64(f.AreaSafety),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// Aggregate combines per-point factors into one route score. The overall score is
// the weighted sum of the unrounded means, boosted, then clamped to [0,100].
func Aggregate(points []models.SafetyFactors) models.RouteSafetyScore {
	if len(points) == 0 {
		return models.RouteSafetyScore{
			OverallScore:    DefaultOverallScore,
			Factors:         DefaultFactors(),
			Warnings:        []string{warnNoSafetyData},
			Recommendations: []string{recommendGenerallyOK},
			DataSources:     DataSources(),
		}
	}

	var means [7]float64
	for _, p := range points {
		v := factorVector(p)
		for i := range means {
			means[i] += v[i]
		}
	}

	var weighted float64
	for i := range means {
		means[i] /= float64(len(points))
		weighted += means[i] * factorWeights[i]
	}

	factors := models.SafetyFactors{
		Lighting:          clamp(round(means[0]), 0, 100),
		PopulationDensity: clamp(round(means[1]), 0, 100),
		PoliceStations:    max(0, round(means[2])),
		Hospitals:         max(0, round(means[3])),
		RoadType:          clamp(round(means[4]), 0, 100),
		TrafficIncidents:  max(0, round(means[5])),
		AreaSafety:        clamp(round(means[6]), 0, 100),
	}

	overall := math.Max(0, math.Min(100, weighted*ScoreBoost))

	return models.RouteSafetyScore{
		OverallScore:    round(overall),
		Factors:         factors,
		Warnings:        Warnings(factors),
		Recommendations: Recommendations(factors),
		DataSources:     DataSources(),
	}
}

// Warnings lists every triggered warning, in a fixed order.
func Warnings(f models.SafetyFactors) []string {
	warnings := []string{}
	if f.PoliceStations == 0 {
		warnings = append(warnings, warnNoPolice)
	}
	if f.TrafficIncidents > 3 {
		warnings = append(warnings, warnIncidents)
	}
	if f.Lighting < 50 {
		warnings = append(warnings, warnLighting)
	}
	if f.Hospitals == 0 {
		warnings = append(warnings, warnNoHospitals)
	}
	return warnings
}

// Recommendations lists every triggered recommendation, or a single all-clear.
func Recommendations(f models.SafetyFactors) []string {
	var recs []string
	if f.PoliceStations == 0 {
		recs = append(recs, recommendMainRoads)
	}
	if f.TrafficIncidents > 2 {
		recs = append(recs, recommendIncidents)
	}
	if f.Lighting < 60 {
		recs = append(recs, recommendDaylight)
	}
	if f.Hospitals == 0 {
		recs = append(recs, recommendContacts)
	}

	if len(recs) == 0 {
		return []string{recommendGenerallyOK}
	}
	return recs
}
