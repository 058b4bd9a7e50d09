package models

// Route is one candidate path returned by the routing provider.
// Coordinates are in travel order, start to end.
type Route struct {
	Coordinates     []Location   `json:"coordinates"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Summary         RouteSummary `json:"summary"`
}

// RouteSummary is the provider's own summary of a route, passed through untouched.
type RouteSummary struct {
	LengthInMeters        float64 `json:"length_in_meters"`
	TravelTimeInSeconds   float64 `json:"travel_time_in_seconds"`
	TrafficDelayInSeconds float64 `json:"traffic_delay_in_seconds"`
	DepartureTime         string  `json:"departure_time,omitempty"`
	ArrivalTime           string  `json:"arrival_time,omitempty"`
}

// ScoredRoute pairs a route with the safety score computed for it.
type ScoredRoute struct {
	Route  Route            `json:"route"`
	Safety RouteSafetyScore `json:"safety"`
}

// RouteOption is a scored route prepared for display.
type RouteOption struct {
	ID                string           `json:"id"`
	Label             string           `json:"label"`
	Description       string           `json:"description"`
	SafetyLabel       string           `json:"safety_label"`
	SafetyDescription string           `json:"safety_description"`
	Advantages        []string         `json:"advantages"`
	Disadvantages     []string         `json:"disadvantages"`
	Distance          string           `json:"distance"`
	Duration          string           `json:"duration"`
	EncodedPolyline   string           `json:"encoded_polyline"`
	Route             Route            `json:"route"`
	Safety            RouteSafetyScore `json:"safety"`
}

// RouteSearchResult is the response to a route search between two endpoints.
type RouteSearchResult struct {
	Start   Location      `json:"start"`
	End     Location      `json:"end"`
	Options []RouteOption `json:"options"`
}
