package models

// Location is a geographic point with an optional human-readable address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Address holds the reverse-geocoded descriptors of a coordinate.
type Address struct {
	FreeformAddress         string `json:"freeform_address"`
	Street                  string `json:"street"`
	StreetName              string `json:"street_name"`
	LocalName               string `json:"local_name"`
	Municipality            string `json:"municipality"`
	MunicipalitySubdivision string `json:"municipality_subdivision"`
	CountrySubdivision      string `json:"country_subdivision"`
}

// Fields returns the address descriptors in a fixed order.
func (a Address) Fields() []string {
	return []string{
		a.FreeformAddress,
		a.Street,
		a.StreetName,
		a.LocalName,
		a.Municipality,
		a.MunicipalitySubdivision,
		a.CountrySubdivision,
	}
}

// TrafficFlow compares the current speed on the nearest road segment against its free-flow speed.
type TrafficFlow struct {
	CurrentSpeed  float64 `json:"current_speed"`
	FreeFlowSpeed float64 `json:"free_flow_speed"`
}
