package main

import (
	"context"
	"os"

	"saarthi-api/docs"
	"saarthi-api/internal/config"
	"saarthi-api/internal/geocache"
	"saarthi-api/internal/handler"
	"saarthi-api/internal/middleware"
	"saarthi-api/internal/pacing"
	"saarthi-api/internal/repository"
	"saarthi-api/internal/safety"
	"saarthi-api/internal/service"
	"saarthi-api/internal/tomtom"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Saarthi Route Safety API
//	@version		1.0
//	@description	Scores candidate driving routes by safety signals gathered along them.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	tables, err := safety.LoadTables(config.HeuristicsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load safety heuristics")
	}

	clock, err := config.PeakClock()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load peak-hour time zone")
	}

	// Provider client, paced for the whole process
	client := tomtom.NewClient(config.TomTomAPIKey,
		tomtom.WithBaseURL(config.TomTomBaseURL),
		tomtom.WithCountrySet(config.TomTomCountrySet),
		tomtom.WithTimeout(config.ProviderTimeout),
		tomtom.WithPacer(pacing.NewPacer(config.ProviderMinInterval)),
	)

	var signals safety.GeoProvider = client
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		cache := repository.NewSignalCacheRepository(conn)
		if err := cache.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare signal cache")
		}
		if removed, err := cache.PurgeExpired(context.Background()); err != nil {
			log.Warn().Err(err).Msg("cannot purge expired cache entries")
		} else {
			log.Info().Int64("removed", removed).Msg("signal cache ready")
		}

		signals = geocache.NewProvider(client, cache, config.SignalCacheTTL)
	}

	// Initialize layers
	collector := safety.NewCollector(signals, tables, safety.WithClock(clock))

	routeService := service.NewRouteService(client, collector,
		service.WithSampleCount(config.RouteSamplePoints),
		service.WithPointDelay(config.RoutePointDelay),
	)
	geoCodeService := service.NewGeoCodeService(client)
	searchService := service.NewRouteSearchService(geoCodeService, routeService)
	safetyService := service.NewPointSafetyService(collector)
	statusService := service.NewProviderStatusService(client)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	routeHandler := handler.NewRouteHandler(searchService)
	safetyHandler := handler.NewSafetyHandler(safetyService)
	statusHandler := handler.NewStatusHandler(statusService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	r.GET("/health", statusHandler.Health)
	r.GET("/provider/status", statusHandler.ProviderStatus)
	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/routes", routeHandler.SearchRoutes)
	r.POST("/routes", routeHandler.PlanRoutes)
	r.GET("/safety", safetyHandler.Safety)

	docs.SwaggerInfo.Host = config.ServerAddress
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
