package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/inventoryhub/inventory-api/internal/api"
	"github.com/inventoryhub/inventory-api/internal/core/service"
	mongodb "github.com/inventoryhub/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inventoryhub/inventory-api/internal/infrastructure/db/redis"
	"github.com/inventoryhub/inventory-api/internal/infrastructure/queue"
	"github.com/inventoryhub/inventory-api/internal/pkg/config"
	"github.com/inventoryhub/inventory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	registrations := mongodb.NewRegistrationRepository(mongoClient, db)
	dashboards := mongodb.NewDashboardRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	// Last-login updates are best effort and must never hold up a login
	// response; they drain through a background worker pool.
	loginRecorder := queue.NewLastLoginRecorder(cfg.Auth.LoginWorkers, users, log)
	loginRecorder.Start(ctx)

	// --- Services ---
	resolver := service.NewProfileResolver(profiles)
	authService := service.NewAuthService(users, resolver, loginRecorder, log)
	registrationService := service.NewRegistrationService(users, registrations, cfg.Auth.BcryptCost, log)
	dashboardService := service.NewDashboardService(users, profiles, dashboards, resolver, log)

	e := api.NewRouter(api.RouterConfig{
		Auth:          authService,
		Registrations: registrationService,
		Dashboards:    dashboardService,
		Sessions:      sessions,
		CookieName:    cfg.Session.CookieName,
		CookieTTL:     cfg.Session.TTL,
		SecureCookies: cfg.Session.SecureCookies,
		Mongo:         db,
		Redis:         rdb,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
