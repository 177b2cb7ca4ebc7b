package shows

import (
	"time"

	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, showRepo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) {
	// reads are open to anyone behind the gate cookie or not
	router.GET("/shows", ListShowsHandler(showRepo))
	router.GET("/shows/:id", GetShowHandler(showRepo))

	// writes require the gate
	showsGroup := router.Group("/shows")
	showsGroup.Use(auth.GateMiddleware())
	{
		showsGroup.POST("", CreateShowHandler(showRepo, invalidator, loc))
		showsGroup.PUT("/:id", UpdateShowHandler(showRepo, invalidator, loc))
		showsGroup.DELETE("/:id", DeleteShowHandler(showRepo, invalidator, loc))
		showsGroup.POST("/:id/rsvp", SetRSVPHandler(showRepo, invalidator, loc))
		showsGroup.DELETE("/:id/rsvp", DeleteRSVPHandler(showRepo, invalidator, loc))
	}
}
