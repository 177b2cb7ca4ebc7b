package recap

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/cache"
	"codeberg.org/encore/server/internal/errors"
	"codeberg.org/encore/server/internal/recap"
	"codeberg.org/encore/server/internal/story"
	"github.com/gin-gonic/gin"
)

// resolves the viewer name for personalization: gate claims first,
// falling back to an explicit query parameter
func viewerName(c *gin.Context) string {
	if name, ok := auth.GetDisplayName(c); ok && name != "" {
		return name
	}

	return c.Query("viewer")
}

// loads recap data for a year, going through the cache when possible
func loadRecap(c *gin.Context, repo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache, viewer string) (*recap.RecapData, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		errors.InvalidYear(c, "year must be a number")
		return nil, false
	}

	if err := agg.ValidateYear(year); err != nil {
		errors.InvalidYear(c, err.Error())
		return nil, false
	}

	if data := recapCache.Get(c.Request.Context(), year, recap.NormalizeName(viewer)); data != nil {
		return data, true
	}

	rows, err := repo.ListYearWithRSVPs(c.Request.Context(), year, agg.Location())
	if err != nil {
		errors.InternalError(c, "failed to load shows for recap", err)
		return nil, false
	}

	data, err := agg.Aggregate(year, rows, viewer)

	if stderrors.Is(err, recap.ErrInvalidYear) {
		errors.InvalidYear(c, err.Error())
		return nil, false
	}

	if err != nil {
		errors.InternalError(c, "failed to aggregate recap", err)
		return nil, false
	}

	recapCache.Set(c.Request.Context(), year, recap.NormalizeName(viewer), data)

	return data, true
}

// GetRecapHandler returns the aggregated recap payload for a year
func GetRecapHandler(repo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := loadRecap(c, repo, agg, recapCache, viewerName(c))
		if !ok {
			return
		}

		c.JSON(http.StatusOK, data)
	}
}

// GetSlidesHandler returns the ordered story slides for a year
func GetSlidesHandler(repo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := viewerName(c)

		data, ok := loadRecap(c, repo, agg, recapCache, viewer)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, SlidesResponse{
			Year:   data.Year,
			Viewer: viewer,
			Slides: story.BuildSlides(data, viewer),
		})
	}
}

// GetShareHandler returns the emoji share text for a year
func GetShareHandler(repo *shows.Repository, agg *recap.Aggregator, recapCache *cache.RecapCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := viewerName(c)

		data, ok := loadRecap(c, repo, agg, recapCache, viewer)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, ShareResponse{
			Year: data.Year,
			Text: story.ShareText(data, viewer),
		})
	}
}
