package container

import (
	"context"
	"fmt"
	"time"

	"repomovil-backend/internal/config"
	"repomovil-backend/internal/domains/auth"
	authhandler "repomovil-backend/internal/domains/auth/handler"
	authrepo "repomovil-backend/internal/domains/auth/repository"
	authservice "repomovil-backend/internal/domains/auth/service"
	"repomovil-backend/internal/domains/category"
	categoryhandler "repomovil-backend/internal/domains/category/handler"
	categoryrepo "repomovil-backend/internal/domains/category/repository"
	categoryservice "repomovil-backend/internal/domains/category/service"
	"repomovil-backend/internal/domains/hero"
	herohandler "repomovil-backend/internal/domains/hero/handler"
	herorepo "repomovil-backend/internal/domains/hero/repository"
	heroservice "repomovil-backend/internal/domains/hero/service"
	"repomovil-backend/internal/domains/item"
	itemhandler "repomovil-backend/internal/domains/item/handler"
	itemrepo "repomovil-backend/internal/domains/item/repository"
	itemservice "repomovil-backend/internal/domains/item/service"
	"repomovil-backend/internal/domains/upload"
	uploadhandler "repomovil-backend/internal/domains/upload/handler"
	infracache "repomovil-backend/internal/infrastructure/cache"
	"repomovil-backend/internal/infrastructure/database"
	"repomovil-backend/internal/infrastructure/storage"
	"repomovil-backend/pkg/cache"
	"repomovil-backend/pkg/jwt"
	"repomovil-backend/pkg/logger"
)

// Container wires the full dependency graph once at startup.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Storage storage.Storage

	JWTManager *jwt.Manager

	CategoryService category.Service
	ItemService     item.Service
	HeroService     hero.Service
	AuthService     auth.Service
	UploadService   upload.Service

	CategoryHandler *categoryhandler.CategoryHandler
	ItemHandler     *itemhandler.ItemHandler
	HeroHandler     *herohandler.HeroHandler
	AuthHandler     *authhandler.AuthHandler
	UploadHandler   *uploadhandler.UploadHandler
}

func New(cfg *config.Config, db *database.PostgresDB) (*Container, error) {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// Redis is optional: on failure the cache degrades to pass-through.
	redis := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redis.Connect(ctx); err != nil {
		logger.Warn("container: redis unavailable, caching disabled", err)
		c.Cache = infracache.Noop{}
	} else {
		c.Cache = redis
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("container: storage init failed: %w", err)
	}
	c.Storage = store

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	categoryRepo := categoryrepo.NewPostgresRepository(db.Pool)
	itemRepo := itemrepo.NewPostgresRepository(db.Pool)
	heroRepo := herorepo.NewPostgresRepository(db.Pool)
	authRepo := authrepo.NewPostgresRepository(db.Pool)

	c.CategoryService = categoryservice.NewCategoryService(categoryRepo, c.Cache, cfg.App.PublicURL)
	c.ItemService = itemservice.NewItemService(itemRepo, c.Cache)
	c.HeroService = heroservice.NewHeroService(heroRepo, c.Cache, cfg.App.PublicURL)
	c.AuthService = authservice.NewAuthService(authRepo, c.JWTManager)
	c.UploadService = upload.NewService(store, cfg.Upload.MaxSizeBytes)

	c.CategoryHandler = categoryhandler.NewCategoryHandler(c.CategoryService)
	c.ItemHandler = itemhandler.NewItemHandler(c.ItemService)
	c.HeroHandler = herohandler.NewHeroHandler(c.HeroService)
	c.AuthHandler = authhandler.NewAuthHandler(c.AuthService)
	c.UploadHandler = uploadhandler.NewUploadHandler(c.UploadService)

	return c, nil
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Upload.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg.Upload.Dir)
	}
}

// Close releases long-lived resources.
func (c *Container) Close() {
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
