package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zonelens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/zones/:zip", handler.GetZone)
		v1.POST("/plants/match", handler.MatchPlant)
		v1.GET("/search/suggest", handler.Suggest)
	}

	return router
}
