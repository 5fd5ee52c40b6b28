// Command server runs the widget-facing HTTP API: ZIP-to-zone resolution,
// plant title matching, and the cached predictive-search suggestion proxy.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zonelens/backend/config"
	httpDelivery "github.com/zonelens/backend/internal/delivery/http"
	"github.com/zonelens/backend/internal/infrastructure/assets"
	"github.com/zonelens/backend/internal/infrastructure/cache"
	"github.com/zonelens/backend/internal/infrastructure/storefront"
	"github.com/zonelens/backend/internal/usecase"
)

func main() {
	// A .env file is a development convenience; absence is fine
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	zoneTable, err := assets.LoadZoneTable()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load zone table")
	}
	plantDB, err := assets.LoadPlantDatabase()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load plant database")
	}

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Int("zipPrefixes", zoneTable.Len()).
		Int("plants", plantDB.Len()).
		Msg("starting zonelens backend")

	resolver := usecase.NewZoneResolver(zoneTable)
	matcher := usecase.NewPlantMatcher(plantDB)
	suggestions := storefront.NewClient(cfg.Storefront.BaseURL)
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Stop()

	handler := httpDelivery.NewHandler(resolver, matcher, suggestions, memoryCache, cfg.Cache.TTL)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
