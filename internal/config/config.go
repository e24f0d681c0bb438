package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Upload UploadConfig
	MinIO  MinIOConfig
	Seed   SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	// PublicURL is the externally reachable base URL, used to rewrite
	// relative /uploads paths into absolute image links.
	PublicURL string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int // token lifetime; default 168 (7 days)
}

type UploadConfig struct {
	// Driver selects the storage backend: "local" or "minio".
	Driver string
	// Dir is the local directory served at /uploads.
	Dir string
	// MaxSizeBytes is the per-file upload limit.
	MaxSizeBytes int64
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SeedConfig drives the cmd/seed admin bootstrap. Never read by the API.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "repomovil-api"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			PublicURL:   getEnv("APP_URL", "http://localhost:4000"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 168),
		},
		Upload: UploadConfig{
			Driver:       getEnv("STORAGE_DRIVER", "local"),
			Dir:          getEnv("UPLOAD_DIR", "public/uploads"),
			MaxSizeBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5<<20)),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "repomovil"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@repomovil.com"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Upload.Driver != "local" && c.Upload.Driver != "minio" {
		return fmt.Errorf("STORAGE_DRIVER must be \"local\" or \"minio\", got %q", c.Upload.Driver)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
