// Package server assembles the gin engine for the comment service.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comment-service/internal/handler"
	"comment-service/internal/middleware"
)

// Deps are the handlers and settings the router is built from.
type Deps struct {
	Comments    *handler.CommentHandler
	Health      *handler.HealthHandler
	CORSOrigins []string
	// AccessLog enables gin's request logger.
	AccessLog bool
}

// NewRouter registers middleware and routes.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if deps.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(middleware.CORS(deps.CORSOrigins))

	router.GET("/", handler.Index)

	// Health and metrics endpoints
	router.GET("/health", deps.Health.Health)
	router.GET("/ready", deps.Health.Ready)
	router.GET("/live", deps.Health.Live)
	router.GET(middleware.MetricsPath, gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		comments := api.Group("/articles/:articleId/comments")
		{
			comments.GET("", deps.Comments.ListComments)
			comments.POST("", deps.Comments.CreateComment)
		}
	}

	return router
}
