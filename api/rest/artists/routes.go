package artists

import (
	"time"

	restshows "codeberg.org/encore/server/api/rest/shows"
	"codeberg.org/encore/server/encore/artists"
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, artistRepo *artists.Repository, showRepo *shows.Repository, invalidator restshows.RecapInvalidator, loc *time.Location) {
	router.GET("/artists", ListArtistsHandler(artistRepo))
	router.GET("/artists/:id", GetArtistHandler(artistRepo))
	router.GET("/artists/:id/releases", ListReleasesHandler(artistRepo))
	router.GET("/releases/upcoming", ListUpcomingReleasesHandler(artistRepo))

	artistsGroup := router.Group("/artists")
	artistsGroup.Use(auth.GateMiddleware())
	{
		artistsGroup.POST("", CreateArtistHandler(artistRepo))
		artistsGroup.PUT("/:id", UpdateArtistHandler(artistRepo))
		artistsGroup.DELETE("/:id", DeleteArtistHandler(artistRepo))
		artistsGroup.POST("/:id/releases", CreateReleaseHandler(artistRepo))
	}

	// billing lives under shows but is managed alongside artists
	billingGroup := router.Group("/shows")
	billingGroup.Use(auth.GateMiddleware())
	{
		billingGroup.POST("/:id/artists", BillArtistHandler(artistRepo, showRepo, invalidator, loc))
		billingGroup.DELETE("/:id/artists/:artistId", UnbillArtistHandler(artistRepo, showRepo, invalidator, loc))
	}
}
