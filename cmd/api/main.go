package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "realestate_api/internal/adapters/http_server"
	"realestate_api/internal/adapters/observability"
	redisad "realestate_api/internal/adapters/redis"
	"realestate_api/internal/app"
	"realestate_api/internal/shared"
	"realestate_api/internal/storage/mongodb"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Msg("database connection ok")

	db := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// deps
	props := mongodb.NewPropertyRepo(db)
	owners := mongodb.NewOwnerRepo(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}
	q := app.NewQueryService(props, owners, cache, cfg.CacheTTL, cfg.DefaultPageSize)
	c := app.NewCommandService(props, owners, cache)

	// http
	srv := server.New(cfg.CORSOrigins, cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
