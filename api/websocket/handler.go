package websocket

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/errors"
	"codeberg.org/encore/server/internal/logger"
	"codeberg.org/encore/server/internal/recap"
	"codeberg.org/encore/server/internal/story"
	ws "codeberg.org/encore/server/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     ws.CheckOrigin,
}

// handles websocket connections for live story playback. Each
// connection gets its own playback machine; slide changes and progress
// are pushed, navigation commands are received.
func StoryHandler(showRepo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params ConnectParams
		if err := c.ShouldBindQuery(&params); err != nil {
			errors.BadRequest(c, "invalid parameters", err)
			return
		}

		if err := agg.ValidateYear(params.Year); err != nil {
			errors.InvalidYear(c, err.Error())
			return
		}

		// resolve viewer: gate token wins over the query fallback
		viewer := params.Viewer
		if params.Token != "" {
			claims, err := auth.ValidateToken(params.Token)
			if err != nil {
				errors.Unauthorized(c, "invalid token")
				return
			}

			viewer = claims.DisplayName
		}

		data := recapCache.Get(c.Request.Context(), params.Year, recap.NormalizeName(viewer))

		if data == nil {
			rows, err := showRepo.ListYearWithRSVPs(c.Request.Context(), params.Year, agg.Location())
			if err != nil {
				errors.InternalError(c, "failed to load shows for recap", err)
				return
			}

			data, err = agg.Aggregate(params.Year, rows, viewer)

			if stderrors.Is(err, recap.ErrInvalidYear) {
				errors.InvalidYear(c, err.Error())
				return
			}

			if err != nil {
				errors.InternalError(c, "failed to aggregate recap", err)
				return
			}

			recapCache.Set(c.Request.Context(), params.Year, recap.NormalizeName(viewer), data)
		}

		slides := story.BuildSlides(data, viewer)

		sessionID, err := ws.GenerateSessionID()
		if err != nil {
			errors.InternalError(c, "failed to generate session ID", err)
			return
		}

		// upgrade HTTP connection to websocket
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.ErrorErr(err, "failed to upgrade connection",
				"year", params.Year,
				"ip", c.ClientIP(),
			)

			return
		}

		session := ws.NewSession(sessionID, params.Year, slides, conn)

		go session.WritePump()
		go session.ReadPump()

		session.Start()

		logger.Info("story session established",
			"session_id", sessionID,
			"year", params.Year,
			"viewer", viewer,
			"slides", len(slides),
			"ip", c.ClientIP(),
		)
	}
}
