package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"repomovil-backend/internal/config"
	"repomovil-backend/internal/infrastructure/database"
	"repomovil-backend/pkg/container"
	"repomovil-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment)

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load database config")
	}

	db := database.NewPostgresDB(dbCfg)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	c, err := container.New(cfg, db)
	if err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("Failed to build container")
	}
	defer c.Close()

	router := SetupRouter(c)

	srv := NewServer(cfg.App.Port, router)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}

	log.Info().Msg("Server stopped")
}
