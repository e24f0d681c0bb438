// Command seed bootstraps the initial admin account. It upserts by email,
// so re-running it rotates the password instead of failing.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"repomovil-backend/internal/config"
	"repomovil-backend/internal/domains/auth"
	authrepo "repomovil-backend/internal/domains/auth/repository"
	"repomovil-backend/internal/infrastructure/database"
	"repomovil-backend/pkg/logger"
)

const bcryptCost = 12

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment)

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD must be set")
	}

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
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	now := time.Now()
	repo := authrepo.NewPostgresRepository(db.Pool)
	user, err := repo.Upsert(ctx, &auth.AdminUser{
		ID:           uuid.New(),
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         "ADMIN",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	log.Info().Str("email", user.Email).Str("id", user.ID.String()).Msg("Admin user seeded")
}
