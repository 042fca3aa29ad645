// @title        AgreeLink API
// @version      1.0
// @description  Marketplace backend for proposals, agreements, and signatures.
// @BasePath     /v1/api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/caesarkutaa/AgreeLink/internal/api"
	"github.com/caesarkutaa/AgreeLink/internal/api/metrics"
	"github.com/caesarkutaa/AgreeLink/internal/api/middleware"
	"github.com/caesarkutaa/AgreeLink/internal/infrastructure/auth"
	"github.com/caesarkutaa/AgreeLink/internal/infrastructure/config"
	mongostore "github.com/caesarkutaa/AgreeLink/internal/infrastructure/db/mongo"
	redisstore "github.com/caesarkutaa/AgreeLink/internal/infrastructure/db/redis"
	"github.com/caesarkutaa/AgreeLink/internal/infrastructure/queue"
	"github.com/caesarkutaa/AgreeLink/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	dispatcher := queue.NewDispatcher(0, mongostore.NewActivityRepository(db), log)
	dispatcher.Start(ctx)
	metrics.SetActivityDepthFunc(func() float64 { return float64(dispatcher.Depth()) })

	var verifier middleware.TokenVerifier
	if cfg.Auth.JWKSURI != "" {
		cache := redisstore.NewJWKSCache(rdb, cfg.Auth.JWKSURI)
		verifier = auth.NewJWKSVerifier(cfg.Auth.JWKSURI, cfg.Auth.Issuer, cfg.Auth.Audience, cache)
		log.Info().Str("jwks_uri", cfg.Auth.JWKSURI).Msg("using external token verifier")
	} else {
		verifier = auth.NewHS256Verifier(cfg.JWTSecret)
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		APIPrefix: cfg.APIPrefix,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		UploadDir: cfg.UploadDir,
		Verifier:  verifier,
		Activity:  dispatcher,
		Log:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
