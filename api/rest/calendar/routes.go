package calendar

import (
	"codeberg.org/encore/server/encore/shows"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, showRepo *shows.Repository) {
	// calendar subscriptions can't carry auth headers, so the feed is open
	router.GET("/calendar.ics", FeedHandler(showRepo))
	router.GET("/shows/:id/google-calendar", GoogleLinkHandler(showRepo))
}
