package geocode

import (
	"context"
	"testing"

	"relief-location-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guangfu = models.Coordinate{Lat: 23.6739, Lng: 121.4015}

func TestFallbackGeocoder_Geocode(t *testing.T) {
	g := NewFallbackGeocoder(guangfu, "花蓮縣光復鄉")

	loc, err := g.Geocode(context.Background(), "光復鄉公所")

	require.NoError(t, err)
	assert.Equal(t, guangfu, loc.Coordinate)
	assert.Equal(t, "花蓮縣光復鄉 - 光復鄉公所", loc.FormattedAddress)
	assert.Equal(t, PrecisionApproximate, loc.Precision)
}

func TestFallbackGeocoder_ReverseGeocode(t *testing.T) {
	g := NewFallbackGeocoder(guangfu, "花蓮縣光復鄉")

	loc, err := g.ReverseGeocode(context.Background(), 23.6739, 121.4015)

	require.NoError(t, err)
	assert.Equal(t, guangfu, loc.Coordinate)
	assert.Equal(t, "lat: 23.6739, lng: 121.4015", loc.FormattedAddress)
	assert.Equal(t, PrecisionApproximate, loc.Precision)
}
