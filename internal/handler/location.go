package handler

import (
	"context"
	"net/http"

	"relief-location-api/internal/geocode"
	"relief-location-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles geocoding, distance, route and validation requests.
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection.
type LocationService interface {
	Geocode(ctx context.Context, address string) (geocode.Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (geocode.Location, error)
	Distance(origin, dest models.Coordinate) (float64, error)
	Route(ctx context.Context, origin, dest models.Coordinate) (models.RouteInfo, error)
	Validate(lat, lng float64) (bool, string)
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// GeocodeRequest is the body of a forward geocoding request.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

// GeocodeResponse is a resolved location. Precision is "approximate" when
// the fallback coordinate was substituted for a provider result.
type GeocodeResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	PlaceID          string  `json:"place_id,omitempty"`
	Precision        string  `json:"precision"`
}

// ReverseGeocodeRequest is the body of a reverse geocoding request.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// DistanceRequest asks for the straight-line distance between two points.
type DistanceRequest struct {
	Origin      models.Coordinate `json:"origin" binding:"required"`
	Destination models.Coordinate `json:"destination" binding:"required"`
}

// DistanceResponse carries the distance rounded to two decimals.
type DistanceResponse struct {
	DistanceKm  float64           `json:"distance_km"`
	Origin      models.Coordinate `json:"origin"`
	Destination models.Coordinate `json:"destination"`
}

// RouteRequest asks for driving metrics between two points.
type RouteRequest struct {
	Origin      models.Coordinate `json:"origin" binding:"required"`
	Destination models.Coordinate `json:"destination" binding:"required"`
}

// RouteResponse carries driving distance and duration for a leg.
type RouteResponse struct {
	Origin      models.Coordinate `json:"origin"`
	Destination models.Coordinate `json:"destination"`
	Route       models.RouteInfo  `json:"route"`
}

// ValidateRequest asks whether a coordinate is usable.
type ValidateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// ValidateResponse reports coordinate validity with a field-level message
// when invalid.
type ValidateResponse struct {
	IsValid   bool    `json:"is_valid"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message,omitempty"`
}

// Geocode handles POST /locations/geocode.
//
// @Summary  Geocode an address
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      GeocodeRequest  true  "Address to resolve"
// @Success  200      {object}  GeocodeResponse
// @Failure  400      {object}  map[string]string
// @Failure  500      {object}  map[string]string
// @Router   /locations/geocode [post]
func (h *LocationHandler) Geocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'address'"})
		return
	}

	loc, err := h.service.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:         loc.Coordinate.Lat,
		Longitude:        loc.Coordinate.Lng,
		FormattedAddress: loc.FormattedAddress,
		PlaceID:          loc.PlaceID,
		Precision:        loc.Precision,
	})
}

// ReverseGeocode handles POST /locations/reverse-geocode.
//
// @Summary  Reverse geocode coordinates
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      ReverseGeocodeRequest  true  "Coordinates to resolve"
// @Success  200      {object}  GeocodeResponse
// @Failure  400      {object}  map[string]string
// @Failure  500      {object}  map[string]string
// @Router   /locations/reverse-geocode [post]
func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	var req ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'latitude' and 'longitude'"})
		return
	}

	loc, err := h.service.ReverseGeocode(c.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:         loc.Coordinate.Lat,
		Longitude:        loc.Coordinate.Lng,
		FormattedAddress: loc.FormattedAddress,
		PlaceID:          loc.PlaceID,
		Precision:        loc.Precision,
	})
}

// Distance handles POST /locations/distance.
//
// @Summary  Straight-line distance between two points
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      DistanceRequest  true  "Origin and destination"
// @Success  200      {object}  DistanceResponse
// @Failure  400      {object}  map[string]string
// @Router   /locations/distance [post]
func (h *LocationHandler) Distance(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'origin' and 'destination'"})
		return
	}

	d, err := h.service.Distance(req.Origin, req.Destination)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{
		DistanceKm:  round2(d),
		Origin:      req.Origin,
		Destination: req.Destination,
	})
}

// Route handles POST /locations/route.
//
// @Summary  Driving route metrics between two points
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      RouteRequest  true  "Origin and destination"
// @Success  200      {object}  RouteResponse
// @Failure  400      {object}  map[string]string
// @Router   /locations/route [post]
func (h *LocationHandler) Route(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'origin' and 'destination'"})
		return
	}

	info, err := h.service.Route(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, RouteResponse{
		Origin:      req.Origin,
		Destination: req.Destination,
		Route:       info,
	})
}

// Validate handles POST /locations/validate. Invalid coordinates are a
// normal 200 response carrying is_valid=false, not an error.
//
// @Summary  Validate a coordinate
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      ValidateRequest  true  "Coordinate to check"
// @Success  200      {object}  ValidateResponse
// @Failure  400      {object}  map[string]string
// @Router   /locations/validate [post]
func (h *LocationHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'latitude' and 'longitude'"})
		return
	}

	ok, msg := h.service.Validate(*req.Latitude, *req.Longitude)
	c.JSON(http.StatusOK, ValidateResponse{
		IsValid:   ok,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Message:   msg,
	})
}
