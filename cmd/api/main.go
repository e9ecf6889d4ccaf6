package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"edusight/adapters/memory"
	"edusight/adapters/postgres"
	"edusight/app"
	"edusight/internal/config"
	"edusight/ports"
	"edusight/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[API] No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Failed to load configuration: %v", err)
	}

	repo, err := buildRepository(cfg)
	if err != nil {
		log.Fatalf("[API] Failed to set up snapshot store: %v", err)
	}

	analysisService := app.NewAnalysisService(cfg.Thresholds, repo)
	progressService := app.NewProgressService(cfg.Thresholds, repo)

	server := ui.NewServer(analysisService, progressService)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[API] Server failed: %v", err)
	}
}

func buildRepository(cfg *config.Config) (ports.SnapshotRepository, error) {
	if cfg.Database.URL == "" {
		log.Printf("[API] DATABASE_URL not set, snapshots kept in memory")
		return memory.NewSnapshotRepository(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}
	return postgres.NewSnapshotRepository(db), nil
}
