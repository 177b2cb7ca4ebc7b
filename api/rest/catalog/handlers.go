package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"codeberg.org/encore/server/internal/catalog"
	"codeberg.org/encore/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// SearchArtistsHandler proxies artist search to the external catalog
func SearchArtistsHandler(client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			errors.BadRequest(c, "q query parameter is required", nil)
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		if limit <= 0 {
			limit = 10
		}

		results, err := client.SearchArtists(c.Request.Context(), query, limit)
		if err != nil {
			errors.InternalError(c, "catalog search failed", err)
			return
		}

		if results == nil {
			results = []catalog.ArtistResult{}
		}

		c.JSON(http.StatusOK, SearchResponse{
			Query:   query,
			Results: results,
		})
	}
}
