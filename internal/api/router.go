package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croplens/fieldsim-backend-go/internal/config"
	"github.com/croplens/fieldsim-backend-go/internal/handler"
	"github.com/croplens/fieldsim-backend-go/internal/middleware"
)

// SetupRouter wires middleware and routes around the field handler.
func SetupRouter(cfg *config.Config, fieldHandler *handler.FieldHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FieldSim API is running",
		})
	})

	limited := r.Group("/", middleware.RateLimit(cfg.RateLimit, time.Minute))
	{
		// Kept at the original path for existing clients.
		limited.POST("/api/analyze", fieldHandler.AnalyzeField)

		api := limited.Group("/api/v1")
		{
			tiles := api.Group("/tiles")
			{
				tiles.GET("/resolve", fieldHandler.ResolveTile)
			}
		}
	}

	return r
}
