package config

import (
	"errors"

	"relief-location-api/internal/geo"
	"relief-location-api/internal/models"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Region bounds, the fallback
// coordinate and search defaults are explicit here instead of ambient
// globals so tests can run against any operating region.
type Config struct {
	ServerAddress    string `mapstructure:"server_address"`
	DBSource         string `mapstructure:"db_source"`
	GoogleMapsAPIKey string `mapstructure:"google_maps_api_key"`

	RegionMinLat float64 `mapstructure:"region_min_lat"`
	RegionMaxLat float64 `mapstructure:"region_max_lat"`
	RegionMinLng float64 `mapstructure:"region_min_lng"`
	RegionMaxLng float64 `mapstructure:"region_max_lng"`

	FallbackLat  float64 `mapstructure:"fallback_lat"`
	FallbackLng  float64 `mapstructure:"fallback_lng"`
	FallbackArea string  `mapstructure:"fallback_area"`

	StationRadiusKm float64 `mapstructure:"station_radius_km"`
	ShelterRadiusKm float64 `mapstructure:"shelter_radius_km"`
	NearbyLimit     int     `mapstructure:"nearby_limit"`
}

// LoadConfig reads configuration from a yaml file in path, with environment
// variables taking precedence. A missing config file is fine as long as the
// environment provides what the defaults do not.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server_address", "0.0.0.0:8080")
	viper.SetDefault("db_source", "")
	viper.SetDefault("google_maps_api_key", "")

	// Taiwan operating region; Guangfu township office as the fallback point.
	viper.SetDefault("region_min_lat", 21.0)
	viper.SetDefault("region_max_lat", 26.0)
	viper.SetDefault("region_min_lng", 119.0)
	viper.SetDefault("region_max_lng", 123.0)
	viper.SetDefault("fallback_lat", 23.6739)
	viper.SetDefault("fallback_lng", 121.4015)
	viper.SetDefault("fallback_area", "花蓮縣光復鄉")

	viper.SetDefault("station_radius_km", 10.0)
	viper.SetDefault("shelter_radius_km", 15.0)
	viper.SetDefault("nearby_limit", 10)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Region returns the operating-area bounding box.
func (c Config) Region() geo.Region {
	return geo.Region{
		MinLat: c.RegionMinLat,
		MaxLat: c.RegionMaxLat,
		MinLng: c.RegionMinLng,
		MaxLng: c.RegionMaxLng,
	}
}

// FallbackCoordinate returns the fixed coordinate substituted when
// geocoding is unavailable.
func (c Config) FallbackCoordinate() models.Coordinate {
	return models.Coordinate{Lat: c.FallbackLat, Lng: c.FallbackLng}
}
