package models

// Coordinate is an immutable geographic point in WGS84 decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Facility kinds stored in the facilities table.
const (
	KindSupplyStation = "supply_station"
	KindShelter       = "shelter"
)

// Shelter statuses. A full shelter still serves nearby search; a closed one does not.
const (
	StatusActive = "active"
	StatusFull   = "full"
	StatusClosed = "closed"
)

// Facility represents a supply station or shelter record. The proximity
// component only reads facilities; they are owned by the storage layer.
type Facility struct {
	ID               int64      `json:"id"`
	Kind             string     `json:"kind"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	Coordinate       Coordinate `json:"coordinates"`
	Capacity         int        `json:"capacity,omitempty"`
	CurrentOccupancy int        `json:"current_occupancy,omitempty"`
	Status           string     `json:"status,omitempty"`
	IsActive         bool       `json:"is_active"`
}

// ProximityResult pairs a facility with its great-circle distance from a
// query origin. Created per query, never persisted.
type ProximityResult struct {
	Facility   Facility `json:"facility"`
	DistanceKm float64  `json:"distance_km"`
}

// RouteInfo describes a driving leg between two points. Status is "OK" when
// a routing provider answered and "ESTIMATED" when the leg was approximated
// from straight-line distance.
type RouteInfo struct {
	DistanceText    string `json:"distance_text"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationText    string `json:"duration_text"`
	DurationSeconds int    `json:"duration_seconds"`
	Status          string `json:"status"`
}

// RouteInfo statuses.
const (
	RouteStatusOK        = "OK"
	RouteStatusEstimated = "ESTIMATED"
)
