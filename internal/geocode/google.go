package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"relief-location-api/internal/models"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleGeocoder resolves locations through the Google Maps Geocoding and
// Distance Matrix APIs. Geocoding failures degrade to the wrapped fallback
// geocoder instead of propagating, so callers always get a location.
type GoogleGeocoder struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	fallback *FallbackGeocoder
}

// NewGoogleGeocoder creates a provider backed by the Google Maps API.
// fallback must be non-nil; it answers when the upstream call fails.
func NewGoogleGeocoder(apiKey string, fallback *FallbackGeocoder) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: fallback,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"distance"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Geocode resolves an address to coordinates. On upstream failure it logs
// the error and returns the fallback location.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (Location, error) {
	loc, err := g.geocodeQuery(ctx, map[string]string{
		"address": address,
		"region":  "tw",
	})
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geocoding degraded to fallback coordinate")
		return g.fallback.Geocode(ctx, address)
	}
	return loc, nil
}

// ReverseGeocode resolves coordinates to an address, degrading to the
// fallback placeholder address on upstream failure.
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error) {
	loc, err := g.geocodeQuery(ctx, map[string]string{
		"latlng":      fmt.Sprintf("%v,%v", lat, lng),
		"result_type": "street_address|route|locality|administrative_area_level_1",
	})
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("reverse geocoding degraded to fallback address")
		return g.fallback.ReverseGeocode(ctx, lat, lng)
	}
	return loc, nil
}

func (g *GoogleGeocoder) geocodeQuery(ctx context.Context, params map[string]string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/geocode/json", nil)
	if err != nil {
		return Location{}, fmt.Errorf("create geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", g.apiKey)
	q.Set("language", "zh-TW")
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("unexpected geocode status: %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Location{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return Location{}, fmt.Errorf("no geocode results (status %q)", decoded.Status)
	}

	r := decoded.Results[0]
	return Location{
		Coordinate:       models.Coordinate{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
		Precision:        PrecisionExact,
	}, nil
}

// Route queries the Distance Matrix API for the driving leg between two
// points. Unlike geocoding, a failure here is returned to the caller, which
// substitutes a straight-line estimate.
func (g *GoogleGeocoder) Route(ctx context.Context, origin, dest models.Coordinate) (RouteLeg, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/distancematrix/json", nil)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("create route request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", g.apiKey)
	q.Set("language", "zh-TW")
	q.Set("units", "metric")
	q.Set("mode", "driving")
	q.Set("origins", fmt.Sprintf("%v,%v", origin.Lat, origin.Lng))
	q.Set("destinations", fmt.Sprintf("%v,%v", dest.Lat, dest.Lng))
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("execute route request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RouteLeg{}, fmt.Errorf("unexpected route status: %d", resp.StatusCode)
	}

	var decoded distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return RouteLeg{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Rows) == 0 || len(decoded.Rows[0].Elements) == 0 {
		return RouteLeg{}, fmt.Errorf("no route results (status %q)", decoded.Status)
	}

	el := decoded.Rows[0].Elements[0]
	if el.Status != "OK" {
		return RouteLeg{}, fmt.Errorf("route element status %q", el.Status)
	}

	return RouteLeg{
		DistanceMeters:  el.Distance.Value,
		DistanceText:    el.Distance.Text,
		DurationSeconds: el.Duration.Value,
		DurationText:    el.Duration.Text,
	}, nil
}
