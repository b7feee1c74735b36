package server

import (
	"time"

	httpHandler "trending-ingest/interfaces/http"
	"trending-ingest/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(trendingHandler httpHandler.ITrendingHandler, secretKey string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", trendingHandler.Healthz)

	api := router.Group("api")
	api.Use(middleware.Auth(secretKey))
	api.POST("/trending/run", trendingHandler.Run)

	return router
}
