package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"posterdeck-backend/internal/shared/middleware"
	"posterdeck-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPosterRoutes(api, c)
		setupCommentRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	return router
}

// ========================================
// POSTER ROUTES
// ========================================
func setupPosterRoutes(api *gin.RouterGroup, c *container.Container) {
	posters := api.Group("/posters")
	{
		posters.GET("", c.PosterHandler.List)
		posters.POST("", c.PosterHandler.Create)
		posters.GET("/:id", c.PosterHandler.GetByID)
		posters.DELETE("/:id", c.PosterHandler.Delete)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
// Comments are addressed by query parameters, not path segments; the
// client always filters by posterId and deletes by comment id.
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	{
		comments.GET("", c.CommentHandler.List)
		comments.POST("", c.CommentHandler.Create)
		comments.DELETE("", c.CommentHandler.Delete)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload-blob", c.UploadHandler.UploadBlob)
	api.POST("/upload-token", c.UploadHandler.IssueToken)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		storageStatus := "ok"
		if err := appCtx.Storage.HealthCheck(ctx); err != nil {
			storageStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disabled"
		} else if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"mongo":   dbStatus,
			"storage": storageStatus,
			"redis":   cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" || storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
