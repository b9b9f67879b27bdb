package service

import (
	"context"
	"fmt"

	"relief-location-api/internal/geo"
	"relief-location-api/internal/geocode"
	"relief-location-api/internal/models"
)

// LocationService contains the business logic for geocoding, distance and
// route queries. The geocoder and router are capability interfaces chosen at
// construction time; router may be nil when no mapping provider is
// configured, in which case routes are estimated from straight-line
// distance.
type LocationService struct {
	geocoder geocode.Geocoder
	router   geocode.Router
	region   geo.Region
}

// NewLocationService creates a new location service.
func NewLocationService(geocoder geocode.Geocoder, router geocode.Router, region geo.Region) *LocationService {
	return &LocationService{geocoder: geocoder, router: router, region: region}
}

// Geocode resolves an address to a location.
func (s *LocationService) Geocode(ctx context.Context, address string) (geocode.Location, error) {
	if address == "" {
		return geocode.Location{}, fmt.Errorf("service: address cannot be empty")
	}

	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("service: failed to geocode address: %w", err)
	}

	return loc, nil
}

// ReverseGeocode resolves coordinates to an address. The origin must lie
// inside the operating region.
func (s *LocationService) ReverseGeocode(ctx context.Context, lat, lng float64) (geocode.Location, error) {
	if err := geo.ValidateCoordinate(models.Coordinate{Lat: lat, Lng: lng}, s.region); err != nil {
		return geocode.Location{}, fmt.Errorf("service: %w", err)
	}

	loc, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("service: failed to reverse geocode: %w", err)
	}

	return loc, nil
}

// Distance returns the great-circle distance in kilometers between two
// validated points.
func (s *LocationService) Distance(origin, dest models.Coordinate) (float64, error) {
	if err := geo.ValidateCoordinate(origin, s.region); err != nil {
		return 0, fmt.Errorf("service: origin: %w", err)
	}
	if err := geo.ValidateCoordinate(dest, s.region); err != nil {
		return 0, fmt.Errorf("service: destination: %w", err)
	}

	return geo.DistanceKm(origin, dest), nil
}

// Route returns driving distance and duration between two validated points.
// When no routing provider is configured, or the provider fails, the leg is
// estimated from straight-line distance and marked ESTIMATED.
func (s *LocationService) Route(ctx context.Context, origin, dest models.Coordinate) (models.RouteInfo, error) {
	if err := geo.ValidateCoordinate(origin, s.region); err != nil {
		return models.RouteInfo{}, fmt.Errorf("service: origin: %w", err)
	}
	if err := geo.ValidateCoordinate(dest, s.region); err != nil {
		return models.RouteInfo{}, fmt.Errorf("service: destination: %w", err)
	}

	if s.router != nil {
		leg, err := s.router.Route(ctx, origin, dest)
		if err == nil {
			return models.RouteInfo{
				DistanceText:    leg.DistanceText,
				DistanceMeters:  leg.DistanceMeters,
				DurationText:    leg.DurationText,
				DurationSeconds: leg.DurationSeconds,
				Status:          models.RouteStatusOK,
			}, nil
		}
		// Fall through to the estimate rather than failing the request.
	}

	est := geo.EstimateRoute(origin, dest)
	return models.RouteInfo{
		DistanceText:    fmt.Sprintf("%.1f km", est.DistanceKm),
		DistanceMeters:  est.DistanceMeters,
		DurationText:    fmt.Sprintf("%d min", est.DurationMinutes),
		DurationSeconds: est.DurationSeconds,
		Status:          models.RouteStatusEstimated,
	}, nil
}

// Validate reports whether the coordinate is usable and, when it is not, a
// field-level message explaining which check failed.
func (s *LocationService) Validate(lat, lng float64) (bool, string) {
	if lat < -90 || lat > 90 {
		return false, "latitude must be between -90 and 90"
	}
	if lng < -180 || lng > 180 {
		return false, "longitude must be between -180 and 180"
	}
	if !s.region.Contains(models.Coordinate{Lat: lat, Lng: lng}) {
		return false, "coordinates are outside the operating region"
	}
	return true, ""
}
