package tomtom

// Wire types for the subset of the TomTom responses this package reads.

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Position struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"position"`
	Address struct {
		FreeformAddress string `json:"freeformAddress"`
	} `json:"address"`
}

type routeResponse struct {
	Routes []routeResult `json:"routes"`
}

type routeResult struct {
	Summary routeSummary `json:"summary"`
	Legs    []routeLeg   `json:"legs"`
}

type routeSummary struct {
	LengthInMeters        float64 `json:"lengthInMeters"`
	TravelTimeInSeconds   float64 `json:"travelTimeInSeconds"`
	TrafficDelayInSeconds float64 `json:"trafficDelayInSeconds"`
	DepartureTime         string  `json:"departureTime"`
	ArrivalTime           string  `json:"arrivalTime"`
}

type routeLeg struct {
	Points []routePoint `json:"points"`
}

type routePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type poiSearchResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

type trafficFlowResponse struct {
	FlowSegmentData *struct {
		CurrentSpeed  float64 `json:"currentSpeed"`
		FreeFlowSpeed float64 `json:"freeFlowSpeed"`
	} `json:"flowSegmentData"`
}

type reverseGeocodeResponse struct {
	Addresses []struct {
		Address *reverseAddress `json:"address"`
	} `json:"addresses"`
}

type reverseAddress struct {
	FreeformAddress         string `json:"freeformAddress"`
	Street                  string `json:"street"`
	StreetName              string `json:"streetName"`
	LocalName               string `json:"localName"`
	Municipality            string `json:"municipality"`
	MunicipalitySubdivision string `json:"municipalitySubdivision"`
	CountrySubdivision      string `json:"countrySubdivision"`
}
