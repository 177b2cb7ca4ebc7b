package recap

import (
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/recap"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, showRepo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) {
	// gate claims personalize the recap when present but are not required
	recapGroup := router.Group("/recap")
	recapGroup.Use(auth.OptionalGateMiddleware())
	{
		recapGroup.GET("/:year", GetRecapHandler(showRepo, agg, recapCache))
		recapGroup.GET("/:year/slides", GetSlidesHandler(showRepo, agg, recapCache))
		recapGroup.GET("/:year/share", GetShareHandler(showRepo, agg, recapCache))
	}
}
