package main

import (
	"os"

	"github.com/rs/zerolog"

	"bookshelf/cache"
	"bookshelf/config"
	"bookshelf/middleware"
	"bookshelf/service"
	"bookshelf/store"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	bookStore := store.CreateMemoryStore()

	var counter middleware.WindowCounter = middleware.CreateMemoryCounter()
	var cacher cache.RequestCacher = cache.CreateMemoryCache(cfg.ActivityMax)

	if rdb := config.NewRedisClient(cfg); rdb != nil {
		counter = middleware.CreateRedisCounter(rdb)
		cacher = cache.CreateRedisCache(rdb, cfg.ActivityMax)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis backends")
	}

	routes := service.SetupRoutes(cfg, bookStore, counter, cacher, logger)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("bookshelf listening")
	if err := routes.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
