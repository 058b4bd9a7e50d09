package safety

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// distanceKm is the great-circle distance between two coordinates in kilometres.
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}) / 1000
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func inAny(boxes []Bounds, lat, lon float64) bool {
	for _, b := range boxes {
		if b.Contains(lat, lon) {
			return true
		}
	}
	return false
}
