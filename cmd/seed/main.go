// Command seed loads the compiled-in roster into MongoDB so the API can run
// with DIRECTORY_SOURCE=mongo.
package main

import (
	"context"
	"time"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/config"
	mongodir "github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/db/mongo"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/directory"
	"github.com/V-HUB-cpu/rotaract-dashboard/pkg/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodir.Connect(ctx, mongodir.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(context.Background())

	roster := directory.NewStatic()
	if err := mongodir.SeedRoster(ctx, db, roster); err != nil {
		log.Fatal().Err(err).Msg("seeding roster failed")
	}

	log.Info().
		Int("members", len(roster.Members())).
		Int("bearers", len(roster.Bearers())).
		Int("admins", len(roster.Admins())).
		Msg("roster seeded")
}
