package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/scope4/google-sheets/config"
	httpDelivery "github.com/scope4/google-sheets/internal/delivery/http"
	"github.com/scope4/google-sheets/internal/domain"
	"github.com/scope4/google-sheets/internal/infrastructure/cache"
	"github.com/scope4/google-sheets/internal/infrastructure/scope4"
	"github.com/scope4/google-sheets/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Dur("cache_ttl", cfg.Cache.TTL).
		Str("api_base_url", cfg.API.BaseURL).
		Msg("starting scope4-sheets-backend")

	// Initialize infrastructure dependencies
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.KeyPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	apiClient := scope4.NewClient(
		cfg.API.APIKey,
		cfg.API.BaseURL,
		cfg.RateLimit.UpstreamRPS,
		cfg.RateLimit.UpstreamBurst,
		logger,
	)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		cacheRepo,
		apiClient,
		usecase.SearchServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
		logger,
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
