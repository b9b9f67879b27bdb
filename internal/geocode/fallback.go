package geocode

import (
	"context"
	"fmt"

	"relief-location-api/internal/models"
)

// FallbackGeocoder substitutes a fixed regional coordinate when no mapping
// provider is configured or the provider is down. Requests never fail;
// results are tagged approximate. Task and need creation must not block on a
// third-party outage, so precision is traded for availability here.
type FallbackGeocoder struct {
	coordinate models.Coordinate
	area       string
}

// NewFallbackGeocoder creates a geocoder pinned to the given coordinate.
// area is the human-readable name of the operating region and prefixes
// every formatted address.
func NewFallbackGeocoder(coordinate models.Coordinate, area string) *FallbackGeocoder {
	return &FallbackGeocoder{coordinate: coordinate, area: area}
}

// Geocode returns the fixed regional coordinate for any address.
func (g *FallbackGeocoder) Geocode(_ context.Context, address string) (Location, error) {
	return Location{
		Coordinate:       g.coordinate,
		FormattedAddress: fmt.Sprintf("%s - %s", g.area, address),
		Precision:        PrecisionApproximate,
	}, nil
}

// ReverseGeocode echoes the coordinates as a formatted placeholder address.
func (g *FallbackGeocoder) ReverseGeocode(_ context.Context, lat, lng float64) (Location, error) {
	return Location{
		Coordinate:       models.Coordinate{Lat: lat, Lng: lng},
		FormattedAddress: fmt.Sprintf("lat: %v, lng: %v", lat, lng),
		Precision:        PrecisionApproximate,
	}, nil
}
