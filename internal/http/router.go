package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/rentals-service/internal/config"
	"github.com/nurpe/rentals-service/internal/http/middleware"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))

	handler.Register(router, authMiddleware)
	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
