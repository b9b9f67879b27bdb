package geo

import (
	"fmt"
	"sort"

	"relief-location-api/internal/models"
)

// FindNearby ranks active candidates by great-circle distance from origin.
// It keeps candidates within radiusKm, sorts ascending by distance with an
// ascending-ID tie-break for deterministic ordering, and truncates to limit.
// An empty result is a valid response, not an error. The candidate slice is
// never mutated.
func FindNearby(
	origin models.Coordinate,
	candidates []models.Facility,
	radiusKm float64,
	limit int,
	region Region,
) ([]models.ProximityResult, error) {
	if err := ValidateCoordinate(origin, region); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius %.2f must be positive", ErrInvalidRadius, radiusKm)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d must be positive", ErrInvalidLimit, limit)
	}

	results := make([]models.ProximityResult, 0, len(candidates))
	for _, f := range candidates {
		if !f.IsActive {
			continue
		}
		d := DistanceKm(origin, f.Coordinate)
		if d <= radiusKm {
			results = append(results, models.ProximityResult{Facility: f, DistanceKm: d})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Facility.ID < results[j].Facility.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
