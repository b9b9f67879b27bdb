package geo

import (
	"math"

	"relief-location-api/internal/models"
)

// assumedSpeedKmh approximates driving speed when no routing provider is
// configured.
const assumedSpeedKmh = 30.0

// RouteEstimate is a straight-line approximation of a driving leg.
type RouteEstimate struct {
	DistanceKm      float64
	DistanceMeters  int
	DurationMinutes int
	DurationSeconds int
}

// EstimateRoute approximates the leg between two points as the great-circle
// distance traveled at assumedSpeedKmh. Used when the distance-matrix
// provider is unavailable so route requests never hard-fail.
func EstimateRoute(origin, dest models.Coordinate) RouteEstimate {
	d := DistanceKm(origin, dest)
	minutes := int(d / assumedSpeedKmh * 60)

	return RouteEstimate{
		DistanceKm:      d,
		DistanceMeters:  int(math.Round(d * 1000)),
		DurationMinutes: minutes,
		DurationSeconds: minutes * 60,
	}
}
