package geocode

import (
	"context"

	"relief-location-api/internal/models"
)

// Precision of a geocoding result. Fallback locations are approximate so
// downstream consumers can tell them apart from provider-resolved ones.
const (
	PrecisionExact       = "exact"
	PrecisionApproximate = "approximate"
)

// Location is a resolved geocoding result.
type Location struct {
	Coordinate       models.Coordinate `json:"coordinates"`
	FormattedAddress string            `json:"formatted_address"`
	PlaceID          string            `json:"place_id,omitempty"`
	Precision        string            `json:"precision"`
}

// Geocoder resolves addresses to coordinates and back.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error)
}

// RouteLeg is a driving distance/duration pair between two points.
type RouteLeg struct {
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
}

// Router produces driving metrics between two coordinates.
type Router interface {
	Route(ctx context.Context, origin, dest models.Coordinate) (RouteLeg, error)
}
