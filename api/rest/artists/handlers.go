package artists

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"codeberg.org/encore/server/api/rest/pagination"
	restshows "codeberg.org/encore/server/api/rest/shows"
	"codeberg.org/encore/server/encore/artists"
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// CreateArtistHandler creates a new tracked artist
func CreateArtistHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req artists.CreateArtistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		artist, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			errors.InternalError(c, "failed to create artist", err)
			return
		}

		c.JSON(http.StatusCreated, artist)
	}
}

// GetArtistHandler fetches a single artist by ID
func GetArtistHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		artist, err := repo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, artists.ErrArtistNotFound) {
			errors.NotFound(c, "artist")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch artist", err)
			return
		}

		c.JSON(http.StatusOK, artist)
	}
}

// ListArtistsHandler lists tracked artists with pagination
func ListArtistsHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		params := pagination.DefaultParams(limit, offset, 50, 100)

		list, total, err := repo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list artists", err)
			return
		}

		if list == nil {
			list = []artists.Artist{}
		}

		c.JSON(http.StatusOK, ArtistsListResponse{
			Artists:    list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// UpdateArtistHandler updates a tracked artist
func UpdateArtistHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req artists.UpdateArtistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		artist, err := repo.Update(c.Request.Context(), c.Param("id"), req)

		if stderrors.Is(err, artists.ErrArtistNotFound) {
			errors.NotFound(c, "artist")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update artist", err)
			return
		}

		c.JSON(http.StatusOK, artist)
	}
}

// DeleteArtistHandler deletes a tracked artist
func DeleteArtistHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := repo.Delete(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, artists.ErrArtistNotFound) {
			errors.NotFound(c, "artist")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to delete artist", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "artist deleted"})
	}
}

// BillArtistHandler bills an artist on a show at a position
func BillArtistHandler(artistRepo *artists.Repository, showRepo *shows.Repository, invalidator restshows.RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req artists.BillArtistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !shows.ValidPosition(req.Position) {
			errors.BadRequest(c, "position must be headliner, support, or local", nil)
			return
		}

		show, err := showRepo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		if _, err := artistRepo.Get(c.Request.Context(), req.ArtistID); err != nil {
			if stderrors.Is(err, artists.ErrArtistNotFound) {
				errors.NotFound(c, "artist")
				return
			}

			errors.InternalError(c, "failed to fetch artist", err)
			return
		}

		if err := artistRepo.Bill(c.Request.Context(), show.ID, req.ArtistID, req.Position); err != nil {
			errors.InternalError(c, "failed to bill artist", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), restshows.RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, MessageResponse{Message: "artist billed"})
	}
}

// UnbillArtistHandler removes an artist from a show's billing
func UnbillArtistHandler(artistRepo *artists.Repository, showRepo *shows.Repository, invalidator restshows.RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, err := showRepo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		err = artistRepo.Unbill(c.Request.Context(), show.ID, c.Param("artistId"))

		if stderrors.Is(err, artists.ErrBillingNotFound) {
			errors.NotFound(c, "billing")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to unbill artist", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), restshows.RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, MessageResponse{Message: "artist unbilled"})
	}
}

// CreateReleaseHandler records a release for an artist
func CreateReleaseHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req artists.CreateReleaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := repo.Get(c.Request.Context(), c.Param("id")); err != nil {
			if stderrors.Is(err, artists.ErrArtistNotFound) {
				errors.NotFound(c, "artist")
				return
			}

			errors.InternalError(c, "failed to fetch artist", err)
			return
		}

		release, err := repo.CreateRelease(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			errors.InternalError(c, "failed to create release", err)
			return
		}

		c.JSON(http.StatusCreated, release)
	}
}

// ListReleasesHandler lists releases for one artist
func ListReleasesHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := repo.Get(c.Request.Context(), c.Param("id")); err != nil {
			if stderrors.Is(err, artists.ErrArtistNotFound) {
				errors.NotFound(c, "artist")
				return
			}

			errors.InternalError(c, "failed to fetch artist", err)
			return
		}

		releases, err := repo.ListReleases(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.InternalError(c, "failed to list releases", err)
			return
		}

		if releases == nil {
			releases = []artists.Release{}
		}

		c.JSON(http.StatusOK, ReleasesResponse{Releases: releases})
	}
}

// ListUpcomingReleasesHandler lists upcoming releases across all tracked artists
func ListUpcomingReleasesHandler(repo *artists.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		if limit <= 0 || limit > 100 {
			limit = 50
		}

		releases, err := repo.ListUpcomingReleases(c.Request.Context(), time.Now(), limit)
		if err != nil {
			errors.InternalError(c, "failed to list upcoming releases", err)
			return
		}

		if releases == nil {
			releases = []artists.Release{}
		}

		c.JSON(http.StatusOK, ReleasesResponse{Releases: releases})
	}
}
