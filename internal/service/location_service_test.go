package service

import (
	"context"
	"testing"

	"relief-location-api/internal/geo"
	"relief-location-api/internal/geocode"
	"relief-location-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var hualien = models.Coordinate{Lat: 23.9739, Lng: 121.6015}

// MockGeocoder is a mock implementation of the geocode.Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (geocode.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(geocode.Location), args.Error(1)
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (geocode.Location, error) {
	args := m.Called(ctx, lat, lng)
	return args.Get(0).(geocode.Location), args.Error(1)
}

// MockRouter is a mock implementation of the geocode.Router interface
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Route(ctx context.Context, origin, dest models.Coordinate) (geocode.RouteLeg, error) {
	args := m.Called(ctx, origin, dest)
	return args.Get(0).(geocode.RouteLeg), args.Error(1)
}

func TestLocationService_Geocode(t *testing.T) {
	resolved := geocode.Location{
		Coordinate:       guangfu,
		FormattedAddress: "970花蓮縣光復鄉中正路一段1號",
		Precision:        geocode.PrecisionExact,
	}

	t.Run("empty address", func(t *testing.T) {
		mockGeo := new(MockGeocoder)
		service := NewLocationService(mockGeo, nil, testRegion)

		_, err := service.Geocode(context.Background(), "")

		assert.Error(t, err)
		mockGeo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("successful geocode", func(t *testing.T) {
		mockGeo := new(MockGeocoder)
		mockGeo.On("Geocode", mock.Anything, "光復鄉公所").Return(resolved, nil)
		service := NewLocationService(mockGeo, nil, testRegion)

		loc, err := service.Geocode(context.Background(), "光復鄉公所")

		require.NoError(t, err)
		assert.Equal(t, resolved, loc)
		mockGeo.AssertExpectations(t)
	})
}

func TestLocationService_ReverseGeocode(t *testing.T) {
	t.Run("invalid coordinates skip the provider", func(t *testing.T) {
		mockGeo := new(MockGeocoder)
		service := NewLocationService(mockGeo, nil, testRegion)

		_, err := service.ReverseGeocode(context.Background(), 90.1, 0)

		assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
		mockGeo.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("successful reverse geocode", func(t *testing.T) {
		resolved := geocode.Location{
			Coordinate:       guangfu,
			FormattedAddress: "970花蓮縣光復鄉中正路一段1號",
			Precision:        geocode.PrecisionExact,
		}
		mockGeo := new(MockGeocoder)
		mockGeo.On("ReverseGeocode", mock.Anything, 23.6739, 121.4015).Return(resolved, nil)
		service := NewLocationService(mockGeo, nil, testRegion)

		loc, err := service.ReverseGeocode(context.Background(), 23.6739, 121.4015)

		require.NoError(t, err)
		assert.Equal(t, resolved, loc)
		mockGeo.AssertExpectations(t)
	})
}

func TestLocationService_Distance(t *testing.T) {
	service := NewLocationService(new(MockGeocoder), nil, testRegion)

	t.Run("same point", func(t *testing.T) {
		d, err := service.Distance(guangfu, guangfu)
		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("known distance", func(t *testing.T) {
		d, err := service.Distance(guangfu, hualien)
		require.NoError(t, err)
		assert.InDelta(t, 39.1, d, 0.5)
	})

	t.Run("invalid origin", func(t *testing.T) {
		_, err := service.Distance(models.Coordinate{Lat: -91, Lng: 121}, hualien)
		assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	})

	t.Run("invalid destination", func(t *testing.T) {
		_, err := service.Distance(guangfu, models.Coordinate{Lat: 35.6762, Lng: 139.6503})
		assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	})
}

func TestLocationService_Route(t *testing.T) {
	t.Run("no router configured estimates the leg", func(t *testing.T) {
		service := NewLocationService(new(MockGeocoder), nil, testRegion)

		info, err := service.Route(context.Background(), guangfu, hualien)

		require.NoError(t, err)
		assert.Equal(t, models.RouteStatusEstimated, info.Status)
		assert.InDelta(t, 39100, float64(info.DistanceMeters), 500)
		// ~39 km at 30 km/h is roughly 78 minutes.
		assert.InDelta(t, 78*60, float64(info.DurationSeconds), 120)
	})

	t.Run("router failure estimates the leg", func(t *testing.T) {
		mockRouter := new(MockRouter)
		mockRouter.On("Route", mock.Anything, guangfu, hualien).Return(geocode.RouteLeg{}, assert.AnError)
		service := NewLocationService(new(MockGeocoder), mockRouter, testRegion)

		info, err := service.Route(context.Background(), guangfu, hualien)

		require.NoError(t, err)
		assert.Equal(t, models.RouteStatusEstimated, info.Status)
		mockRouter.AssertExpectations(t)
	})

	t.Run("router success", func(t *testing.T) {
		leg := geocode.RouteLeg{
			DistanceMeters:  48200,
			DistanceText:    "48.2 km",
			DurationSeconds: 3300,
			DurationText:    "55 min",
		}
		mockRouter := new(MockRouter)
		mockRouter.On("Route", mock.Anything, guangfu, hualien).Return(leg, nil)
		service := NewLocationService(new(MockGeocoder), mockRouter, testRegion)

		info, err := service.Route(context.Background(), guangfu, hualien)

		require.NoError(t, err)
		assert.Equal(t, models.RouteInfo{
			DistanceText:    "48.2 km",
			DistanceMeters:  48200,
			DurationText:    "55 min",
			DurationSeconds: 3300,
			Status:          models.RouteStatusOK,
		}, info)
		mockRouter.AssertExpectations(t)
	})

	t.Run("invalid origin", func(t *testing.T) {
		service := NewLocationService(new(MockGeocoder), nil, testRegion)

		_, err := service.Route(context.Background(), models.Coordinate{Lat: 90.1, Lng: 0}, hualien)

		assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	})
}

func TestLocationService_Validate(t *testing.T) {
	service := NewLocationService(new(MockGeocoder), nil, testRegion)

	tests := []struct {
		name        string
		lat, lng    float64
		wantValid   bool
		wantMessage string
	}{
		{"guangfu", 23.6739, 121.4015, true, ""},
		{"taipei", 25.0330, 121.5654, true, ""},
		{"latitude out of range", 91, 121, false, "latitude must be between -90 and 90"},
		{"longitude out of range", 23.6739, -181, false, "longitude must be between -180 and 180"},
		{"outside region", 35.6762, 139.6503, false, "coordinates are outside the operating region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := service.Validate(tt.lat, tt.lng)
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}
