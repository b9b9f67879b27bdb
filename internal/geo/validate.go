package geo

import (
	"errors"
	"fmt"

	"relief-location-api/internal/models"
)

// Validation sentinels. Callers map these to field-level 400 responses via
// errors.Is; everything else is a storage or upstream failure.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrInvalidLimit      = errors.New("invalid limit")
)

// Region is the operating-area bounding box enforced on query coordinates.
type Region struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the coordinate falls inside the bounding box.
func (r Region) Contains(c models.Coordinate) bool {
	return c.Lat >= r.MinLat && c.Lat <= r.MaxLat &&
		c.Lng >= r.MinLng && c.Lng <= r.MaxLng
}

// ValidateCoordinate checks the global latitude/longitude ranges and then
// the regional bounding box. It fails fast with ErrInvalidCoordinate and a
// field-level message.
func ValidateCoordinate(c models.Coordinate, region Region) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %.4f must be between -90 and 90", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %.4f must be between -180 and 180", ErrInvalidCoordinate, c.Lng)
	}
	if !region.Contains(c) {
		return fmt.Errorf("%w: (%.4f, %.4f) is outside the operating region", ErrInvalidCoordinate, c.Lat, c.Lng)
	}
	return nil
}
