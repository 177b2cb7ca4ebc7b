package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/encore/server/api/rest/artists"
	"codeberg.org/encore/server/api/rest/auth"
	"codeberg.org/encore/server/api/rest/calendar"
	"codeberg.org/encore/server/api/rest/catalog"
	"codeberg.org/encore/server/api/rest/health"
	"codeberg.org/encore/server/api/rest/recap"
	"codeberg.org/encore/server/api/rest/shows"
	"codeberg.org/encore/server/api/websocket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1)
		shows.RegisterRoutes(v1, server.showRepo, server.recapCache, server.aggregator.Location())
		artists.RegisterRoutes(v1, server.artistRepo, server.showRepo, server.recapCache, server.aggregator.Location())
		recap.RegisterRoutes(v1, server.showRepo, server.aggregator, server.recapCache)
		calendar.RegisterRoutes(v1, server.showRepo)
		catalog.RegisterRoutes(v1, server.catalog)
		websocket.RegisterRoutes(v1, server.showRepo, server.aggregator, server.recapCache)
	}
}

// builds CORS config from ALLOWED_ORIGINS; permissive outside production
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		list := strings.Split(origins, ",")

		for i := range list {
			list[i] = strings.TrimSpace(list[i])
		}

		config.AllowOrigins = list
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return cors.New(config)
}
