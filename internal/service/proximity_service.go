package service

import (
	"context"
	"fmt"

	"relief-location-api/internal/geo"
	"relief-location-api/internal/models"
)

// ProximityService ranks facilities by great-circle distance from a query
// origin. The candidate fetch is delegated to the storage layer; everything
// after it is pure and safe for concurrent use.
type ProximityService struct {
	repo   FacilityRepository
	region geo.Region
}

// FacilityRepository is the storage collaborator for nearby search.
type FacilityRepository interface {
	FetchActiveFacilities(ctx context.Context, kind string) ([]models.Facility, error)
}

// NewProximityService creates a new proximity service bounded to the given
// operating region.
func NewProximityService(repo FacilityRepository, region geo.Region) *ProximityService {
	return &ProximityService{repo: repo, region: region}
}

// FindNearby returns the facilities of the given kind within radiusKm of
// origin, closest first, capped at limit. All validation happens before the
// storage fetch so invalid requests never touch the database.
func (s *ProximityService) FindNearby(
	ctx context.Context,
	kind string,
	origin models.Coordinate,
	radiusKm float64,
	limit int,
) ([]models.ProximityResult, error) {
	if err := geo.ValidateCoordinate(origin, s.region); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("service: %w: radius %.2f must be positive", geo.ErrInvalidRadius, radiusKm)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("service: %w: limit %d must be positive", geo.ErrInvalidLimit, limit)
	}

	candidates, err := s.repo.FetchActiveFacilities(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch facilities: %w", err)
	}

	results, err := geo.FindNearby(origin, candidates, radiusKm, limit, s.region)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	return results, nil
}
