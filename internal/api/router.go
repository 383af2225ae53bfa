package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. healthCheck probes the
// storage backend; a nil check means the backend needs no probing.
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger, healthCheck func(context.Context) error) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	categoryHandler := NewCategoryHandler(services, log)
	tagHandler := NewTagHandler(services, log)
	workshopHandler := NewWorkshopHandler(services, log)
	eventHandler := NewEventHandler(services, log)
	newsletterHandler := NewNewsletterHandler(services, log)
	breakingHandler := NewBreakingNewsHandler(services, log)

	// Health check
	router.GET("/health", healthHandler(healthCheck))
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:slug", categoryHandler.GetCategory)
			categories.GET("/:slug/articles", categoryHandler.ListCategoryArticles)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:slug", articleHandler.GetArticle)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", tagHandler.CreateTag)
		}

		workshops := v1.Group("/workshops")
		{
			workshops.GET("", workshopHandler.ListWorkshops)
			workshops.POST("", workshopHandler.CreateWorkshop)
			workshops.GET("/:slug", workshopHandler.GetWorkshop)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
		}

		breaking := v1.Group("/breaking-news")
		{
			breaking.GET("", breakingHandler.ListBreakingNews)
			breaking.POST("", breakingHandler.CreateBreakingNews)
		}

		v1.POST("/subscribers", newsletterHandler.Subscribe)
	}

	return router
}

// healthHandler returns the health status, probing the storage backend when
// a check is configured
func healthHandler(check func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"timestamp": time.Now().Format(time.RFC3339),
					"service":   "news-portal-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-portal-api",
		})
	}
}

// metricsHandler returns per-entity record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"database":  services.Counts(c.Request.Context()),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// requestIDMiddleware tags every request with an id, honoring one supplied
// by the client
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("request_id", c.GetString("request_id")).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
