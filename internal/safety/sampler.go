package safety

import "saarthi-api/internal/models"

// DefaultSampleCount is how many points of a route are scored.
const DefaultSampleCount = 2

// Sample picks count points from coords at a fixed stride, keeping travel order.
// Inputs no longer than count are returned unchanged.
func Sample(coords []models.Location, count int) []models.Location {
	if count <= 0 {
		return nil
	}
	if len(coords) <= count {
		return coords
	}

	step := len(coords) / count
	sampled := make([]models.Location, 0, count)
	for i := 0; i < count; i++ {
		sampled = append(sampled, coords[min(i*step, len(coords)-1)])
	}
	return sampled
}
