package catalog

import (
	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/catalog"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *catalog.Client) {
	// gated so the upstream rate limit isn't burned by anonymous traffic
	catalogGroup := router.Group("/catalog")
	catalogGroup.Use(auth.GateMiddleware())
	{
		catalogGroup.GET("/artists", SearchArtistsHandler(client))
	}
}
