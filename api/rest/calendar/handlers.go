package calendar

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/errors"
	"codeberg.org/encore/server/internal/ics"
	"github.com/gin-gonic/gin"
)

const feedLimit = 500

// converts a show into a calendar event
func showEvent(show shows.Show) ics.Event {
	location := show.Venue
	if show.City != "" {
		location = fmt.Sprintf("%s, %s", show.Venue, show.City)
	}

	return ics.Event{
		UID:      fmt.Sprintf("show-%s@encore", show.ID),
		Summary:  show.Title,
		Location: location,
		Start:    show.DateTime,
	}
}

// FeedHandler serves all upcoming shows as an iCalendar feed
func FeedHandler(repo *shows.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, _, err := repo.ListUpcoming(c.Request.Context(), time.Now(), feedLimit, 0)
		if err != nil {
			errors.InternalError(c, "failed to load shows for calendar", err)
			return
		}

		events := make([]ics.Event, 0, len(list))
		for _, show := range list {
			events = append(events, showEvent(show))
		}

		c.Header("Content-Disposition", `attachment; filename="encore.ics"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics.Calendar("Encore Shows", events)))
	}
}

// GoogleLinkHandler returns a prefilled Google Calendar URL for one show
func GoogleLinkHandler(repo *shows.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, err := repo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		c.JSON(http.StatusOK, GoogleLinkResponse{
			ShowID: show.ID,
			URL:    ics.GoogleCalendarURL(showEvent(*show)),
		})
	}
}
