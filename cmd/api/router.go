package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"questions-backend/internal/shared/middleware"
	"questions-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	// Recovery goes last so logger and metrics still see panicking requests.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
	)
	if c.Config.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Recovery())

	if c.Config.Metrics.Enabled {
		router.GET(c.Config.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	router.GET("/health", healthCheckHandler(c))

	setupQuestionRoutes(router, c)

	return router
}

// ========================================
// QUESTION ROUTES
// ========================================
func setupQuestionRoutes(router *gin.Engine, c *container.Container) {
	c.QuestionHandler.RegisterRoutes(router.Group("/questions"))
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
// Redis is optional and never degrades the status.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "memory"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disabled"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
