package shows

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"codeberg.org/encore/server/api/rest/pagination"
	"codeberg.org/encore/server/encore/shows"
	"codeberg.org/encore/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// invalidates cached recaps when show data changes
type RecapInvalidator interface {
	InvalidateYear(ctx context.Context, year int)
}

// RecapYear is the recap year a show belongs to. Year membership is
// defined in the reference timezone, not UTC: a show a few hours into
// January 1st UTC can still fall in the previous local year.
func RecapYear(t time.Time, loc *time.Location) int {
	return t.In(loc).Year()
}

// CreateShowHandler creates a new show
func CreateShowHandler(repo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shows.CreateShowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		show, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			errors.InternalError(c, "failed to create show", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), RecapYear(show.DateTime, loc))

		c.JSON(http.StatusCreated, show)
	}
}

// GetShowHandler fetches a single show by ID
func GetShowHandler(repo *shows.Repository) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, show)
	}
}

// ListShowsHandler lists upcoming shows with pagination
func ListShowsHandler(repo *shows.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		params := pagination.DefaultParams(limit, offset, 50, 100)

		list, total, err := repo.ListUpcoming(c.Request.Context(), time.Now(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list shows", err)
			return
		}

		if list == nil {
			list = []shows.Show{}
		}

		c.JSON(http.StatusOK, ShowsListResponse{
			Shows:      list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// UpdateShowHandler updates a show
func UpdateShowHandler(repo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shows.UpdateShowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		show, err := repo.Update(c.Request.Context(), c.Param("id"), req)

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update show", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, show)
	}
}

// DeleteShowHandler deletes a show
func DeleteShowHandler(repo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		// fetch first so we know which recap year to invalidate
		show, err := repo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		if err := repo.Delete(c.Request.Context(), show.ID); err != nil {
			errors.InternalError(c, "failed to delete show", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, MessageResponse{Message: "show deleted"})
	}
}

// SetRSVPHandler creates or updates an RSVP on a show
func SetRSVPHandler(repo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shows.RSVPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !shows.ValidStatus(req.Status) {
			errors.BadRequest(c, "status must be going, maybe, or not_going", nil)
			return
		}

		show, err := repo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		if err := repo.SetRSVP(c.Request.Context(), show.ID, req.Name, req.Status); err != nil {
			errors.InternalError(c, "failed to save rsvp", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, MessageResponse{Message: "rsvp saved"})
	}
}

// DeleteRSVPHandler removes an RSVP from a show
func DeleteRSVPHandler(repo *shows.Repository, invalidator RecapInvalidator, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			errors.BadRequest(c, "name query parameter is required", nil)
			return
		}

		show, err := repo.Get(c.Request.Context(), c.Param("id"))

		if stderrors.Is(err, shows.ErrShowNotFound) {
			errors.NotFound(c, "show")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to fetch show", err)
			return
		}

		err = repo.DeleteRSVP(c.Request.Context(), show.ID, name)

		if stderrors.Is(err, shows.ErrRSVPNotFound) {
			errors.NotFound(c, "rsvp")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to delete rsvp", err)
			return
		}

		invalidator.InvalidateYear(c.Request.Context(), RecapYear(show.DateTime, loc))

		c.JSON(http.StatusOK, MessageResponse{Message: "rsvp deleted"})
	}
}
