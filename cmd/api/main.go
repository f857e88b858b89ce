// @title        Club Dashboard API
// @version      1.0
// @description  Role-based club management dashboard API.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/metrics"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/service"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/config"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/content"
	mongodir "github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/db/mongo"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/db/redis"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/directory"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/notify"
	"github.com/V-HUB-cpu/rotaract-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Session persistence (Redis) ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	sessionRepo := redis.NewSessionRepository(rdb, cfg.Session.Key)

	// --- Roster directory ---
	var roster ports.Directory
	var mongoDB *mongo.Database
	switch cfg.Directory.Source {
	case "mongo":
		client, db, err := mongodir.Connect(ctx, mongodir.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer client.Disconnect(context.Background())
		mongoDB = db
		roster, err = mongodir.NewDirectory(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("loading roster from mongo failed")
		}
	default:
		roster = directory.NewStatic()
	}

	// --- Core services ---
	authenticator := service.NewAuthenticator(roster)
	sessions := service.NewSessionStore(authenticator, roster, sessionRepo, cfg.Session.StrictRestore, log)
	switch err := sessions.Restore(ctx); {
	case err == nil && sessions.IsAuthenticated():
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	case errors.Is(err, domain.ErrSessionCorrupt):
		metrics.SessionRestoresTotal.WithLabelValues("corrupt").Inc()
	case err != nil:
		log.Fatal().Err(err).Msg("session restore failed")
	default:
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
	}

	views := service.NewViewRouter()
	catalog := service.NewContentService(content.Seed())

	sink := notify.NewLogSink(log)
	dispatcher := notify.NewDispatcher(0, sink, log)
	dispatcher.Start(ctx)

	management := service.NewManagementService(roster, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Directory:  roster,
		Sessions:   sessions,
		Views:      views,
		Content:    catalog,
		Management: management,
		Redis:      rdb,
		Mongo:      mongoDB,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("directory", cfg.Directory.Source).Msg("club dashboard api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
