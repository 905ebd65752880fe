package avoid

import "math"

// ObstacleAhead reports whether the range at index is a valid reading at or
// inside stopDistance. Missing, NaN and negative readings are not readings.
func ObstacleAhead(ranges []float32, index int, stopDistance float64) bool {
	if index < 0 || index >= len(ranges) {
		return false
	}
	r := float64(ranges[index])
	if math.IsNaN(r) || r < 0 {
		return false
	}
	return r <= stopDistance
}
