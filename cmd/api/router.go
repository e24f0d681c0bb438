package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"repomovil-backend/internal/shared/middleware"
	"repomovil-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		corsMiddleware(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "name": c.Config.App.Name})
	})

	// Uploaded images are served statically under the local driver; the
	// MinIO driver returns absolute URLs instead.
	if c.Config.Upload.Driver == "local" {
		router.Static("/uploads", c.Config.Upload.Dir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(api, c)
		setupAuthRoutes(api, c)
		setupAdminRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	return router
}

// corsMiddleware mirrors an open CORS policy: any origin, auth header allowed.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return cors.New(cfg)
}

func setupPublicRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/categories", c.CategoryHandler.ListPublic)
	api.GET("/categories/:id/items", c.ItemHandler.ListByCategory)
	api.GET("/search", c.ItemHandler.Search)
	api.GET("/hero", c.HeroHandler.ListPublic)
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager), middleware.RequireAdmin())
	{
		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		admin.POST("/items", c.ItemHandler.Create)
		admin.PUT("/items/:id", c.ItemHandler.Update)
		admin.DELETE("/items/:id", c.ItemHandler.Delete)

		admin.POST("/hero", c.HeroHandler.Create)
		admin.PUT("/hero/:id", c.HeroHandler.Update)
		admin.DELETE("/hero/:id", c.HeroHandler.Delete)
	}
}

func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload",
		middleware.Auth(c.JWTManager),
		middleware.RequireAdmin(),
		c.UploadHandler.Upload,
	)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}

		// Redis is best-effort: a failure degrades caching, not the API.
		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
