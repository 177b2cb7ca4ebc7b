package websocket

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/recap"
)

func RegisterRoutes(router *gin.RouterGroup, showRepo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) {
	router.GET("/ws/story", StoryHandler(showRepo, agg, recapCache))
}
