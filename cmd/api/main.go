package main

import (
	"context"
	"net/http"

	"relief-location-api/internal/config"
	"relief-location-api/internal/geocode"
	"relief-location-api/internal/handler"
	"relief-location-api/internal/repository"
	"relief-location-api/internal/service"

	_ "relief-location-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Relief Location API
// @version      1.0
// @description  Proximity search, geocoding and routing for disaster-relief facilities.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	fallback := geocode.NewFallbackGeocoder(config.FallbackCoordinate(), config.FallbackArea)

	// The geocoder is chosen once here; call sites never branch on key
	// presence. Without a key every geocode degrades to the fallback
	// coordinate and routes are straight-line estimates.
	var geocoder geocode.Geocoder = fallback
	var router geocode.Router
	if config.GoogleMapsAPIKey != "" {
		google := geocode.NewGoogleGeocoder(config.GoogleMapsAPIKey, fallback)
		geocoder = google
		router = google
	} else {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set, geocoding uses the fallback coordinate")
	}

	proximityService := service.NewProximityService(repo, config.Region())
	locationService := service.NewLocationService(geocoder, router, config.Region())

	nearbyHandler := handler.NewNearbyHandler(
		proximityService,
		handler.SearchDefaults{RadiusKm: config.StationRadiusKm, Limit: config.NearbyLimit},
		handler.SearchDefaults{RadiusKm: config.ShelterRadiusKm, Limit: config.NearbyLimit},
	)
	locationHandler := handler.NewLocationHandler(locationService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	locations := r.Group("/api/v1/locations")
	locations.POST("/geocode", locationHandler.Geocode)
	locations.POST("/reverse-geocode", locationHandler.ReverseGeocode)
	locations.POST("/distance", locationHandler.Distance)
	locations.POST("/route", locationHandler.Route)
	locations.POST("/validate", locationHandler.Validate)
	locations.POST("/nearby/supply-stations", nearbyHandler.SupplyStations)
	locations.POST("/nearby/shelters", nearbyHandler.Shelters)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
