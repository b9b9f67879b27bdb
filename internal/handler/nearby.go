package handler

import (
	"context"
	"net/http"

	"relief-location-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NearbyHandler handles facility proximity search requests.
type NearbyHandler struct {
	service         ProximityService
	stationDefaults SearchDefaults
	shelterDefaults SearchDefaults
}

// ProximityService interface for dependency injection.
type ProximityService interface {
	FindNearby(ctx context.Context, kind string, origin models.Coordinate, radiusKm float64, limit int) ([]models.ProximityResult, error)
}

// SearchDefaults are applied when a nearby request omits radius or limit.
type SearchDefaults struct {
	RadiusKm float64
	Limit    int
}

// NewNearbyHandler creates a new nearby handler.
func NewNearbyHandler(svc ProximityService, stations, shelters SearchDefaults) *NearbyHandler {
	return &NearbyHandler{service: svc, stationDefaults: stations, shelterDefaults: shelters}
}

// NearbySearchRequest is the body of a nearby search. Radius and limit are
// optional; kind-specific defaults apply when omitted.
type NearbySearchRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	RadiusKm  *float64 `json:"radius_km"`
	Limit     *int     `json:"limit"`
}

// StationResult is a supply station with its distance from the query origin.
type StationResult struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Coordinates models.Coordinate `json:"coordinates"`
	DistanceKm  float64           `json:"distance_km"`
	IsActive    bool              `json:"is_active"`
}

// ShelterResult is a shelter with its distance from the query origin.
type ShelterResult struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	Coordinates      models.Coordinate `json:"coordinates"`
	Capacity         int               `json:"capacity"`
	CurrentOccupancy int               `json:"current_occupancy"`
	Status           string            `json:"status"`
	DistanceKm       float64           `json:"distance_km"`
}

// NearbyStationsResponse lists supply stations ordered by distance.
type NearbyStationsResponse struct {
	Center     models.Coordinate `json:"center"`
	RadiusKm   float64           `json:"radius_km"`
	TotalFound int               `json:"total_found"`
	Stations   []StationResult   `json:"stations"`
}

// NearbySheltersResponse lists shelters ordered by distance.
type NearbySheltersResponse struct {
	Center     models.Coordinate `json:"center"`
	RadiusKm   float64           `json:"radius_km"`
	TotalFound int               `json:"total_found"`
	Shelters   []ShelterResult   `json:"shelters"`
}

// SupplyStations handles POST /locations/nearby/supply-stations.
//
// @Summary  Find nearby supply stations
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      NearbySearchRequest  true  "Search parameters"
// @Success  200      {object}  NearbyStationsResponse
// @Failure  400      {object}  map[string]string
// @Failure  500      {object}  map[string]string
// @Router   /locations/nearby/supply-stations [post]
func (h *NearbyHandler) SupplyStations(c *gin.Context) {
	h.search(c, models.KindSupplyStation, h.stationDefaults)
}

// Shelters handles POST /locations/nearby/shelters.
//
// @Summary  Find nearby shelters
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    request  body      NearbySearchRequest  true  "Search parameters"
// @Success  200      {object}  NearbySheltersResponse
// @Failure  400      {object}  map[string]string
// @Failure  500      {object}  map[string]string
// @Router   /locations/nearby/shelters [post]
func (h *NearbyHandler) Shelters(c *gin.Context) {
	h.search(c, models.KindShelter, h.shelterDefaults)
}

func (h *NearbyHandler) search(c *gin.Context, kind string, defaults SearchDefaults) {
	var req NearbySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	radius := defaults.RadiusKm
	if req.RadiusKm != nil {
		radius = *req.RadiusKm
	}
	limit := defaults.Limit
	if req.Limit != nil {
		limit = *req.Limit
	}

	origin := models.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}

	results, err := h.service.FindNearby(c.Request.Context(), kind, origin, radius, limit)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if kind == models.KindSupplyStation {
		resp := NearbyStationsResponse{
			Center:     origin,
			RadiusKm:   radius,
			TotalFound: len(results),
			Stations:   make([]StationResult, 0, len(results)),
		}
		for _, res := range results {
			resp.Stations = append(resp.Stations, StationResult{
				ID:          res.Facility.ID,
				Name:        res.Facility.Name,
				Address:     res.Facility.Address,
				Coordinates: res.Facility.Coordinate,
				DistanceKm:  round2(res.DistanceKm),
				IsActive:    res.Facility.IsActive,
			})
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp := NearbySheltersResponse{
		Center:     origin,
		RadiusKm:   radius,
		TotalFound: len(results),
		Shelters:   make([]ShelterResult, 0, len(results)),
	}
	for _, res := range results {
		resp.Shelters = append(resp.Shelters, ShelterResult{
			ID:               res.Facility.ID,
			Name:             res.Facility.Name,
			Address:          res.Facility.Address,
			Coordinates:      res.Facility.Coordinate,
			Capacity:         res.Facility.Capacity,
			CurrentOccupancy: res.Facility.CurrentOccupancy,
			Status:           res.Facility.Status,
			DistanceKm:       round2(res.DistanceKm),
		})
	}
	c.JSON(http.StatusOK, resp)
}
