package models

// AreaType is the coarse land-use category of a coordinate.
type AreaType string

const (
	AreaCommercial  AreaType = "commercial"
	AreaResidential AreaType = "residential"
	AreaMixed       AreaType = "mixed"
)

// SafetyFactors is the safety signal at one sampled point, or the aggregate over a route.
// Lighting, PopulationDensity, RoadType and AreaSafety are in [0,100]; the rest are counts.
type SafetyFactors struct {
	Lighting          int `json:"lighting"`
	PopulationDensity int `json:"population_density"`
	PoliceStations    int `json:"police_stations"`
	Hospitals         int `json:"hospitals"`
	RoadType          int `json:"road_type"`
	TrafficIncidents  int `json:"traffic_incidents"`
	AreaSafety        int `json:"area_safety"`
}

// RouteSafetyScore is the composite safety assessment of one route.
type RouteSafetyScore struct {
	OverallScore    int           `json:"overall_score"`
	Factors         SafetyFactors `json:"factors"`
	Warnings        []string      `json:"warnings"`
	Recommendations []string      `json:"recommendations"`
	DataSources     []string      `json:"data_sources"`
}
