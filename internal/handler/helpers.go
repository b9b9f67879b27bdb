package handler

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"relief-location-api/internal/geo"
)

// statusForError maps service errors to HTTP statuses. Validation failures
// surface their field-level message; anything else stays opaque.
func statusForError(err error) (int, string) {
	if errors.Is(err, geo.ErrInvalidCoordinate) ||
		errors.Is(err, geo.ErrInvalidRadius) ||
		errors.Is(err, geo.ErrInvalidLimit) {
		return http.StatusBadRequest, strings.TrimPrefix(err.Error(), "service: ")
	}
	return http.StatusInternalServerError, "internal server error"
}

// round2 rounds a distance for the response boundary. Ranking happens on
// the unrounded value.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
