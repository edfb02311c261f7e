package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"talento-local-backend/config"
	"talento-local-backend/internal/repository/postgres"
	"talento-local-backend/internal/seed"
	"talento-local-backend/migrations"
	"talento-local-backend/pkg/database"
	"talento-local-backend/pkg/logger"
)

func main() {
	withSeed := flag.Bool("seed", false, "upsert the initial skill catalog after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := database.Migrate(ctx, dbPool, migrations.FS)
	if err != nil {
		logger.Log.Error("Migration failed", "error", err, "applied", applied)
		os.Exit(1)
	}
	if len(applied) == 0 {
		logger.Log.Info("Schema is up to date")
	} else {
		logger.Log.Info("Migrations applied", "versions", applied)
	}

	if *withSeed {
		if err := seed.Run(ctx, postgres.NewSkillRepository(dbPool)); err != nil {
			logger.Log.Error("Skill seed failed", "error", err)
			os.Exit(1)
		}
	}
}
