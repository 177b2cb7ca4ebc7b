package shows

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// RSVP status values accepted on a show
const (
	StatusGoing    = "going"
	StatusMaybe    = "maybe"
	StatusNotGoing = "not_going"
)

// artist billing positions on a show
const (
	PositionHeadliner = "headliner"
	PositionSupport   = "support"
	PositionLocal     = "local"
)

type Show struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DateTime  time.Time `json:"date_time"` // UTC instant
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RSVP struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// an artist billed on a show with their position
type BilledArtist struct {
	ArtistID string `json:"artist_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Position string `json:"position"` // headliner, support, or local
}

// a show with its nested RSVP rows and billing, as fetched for a query window
type ShowWithRSVPs struct {
	Show
	RSVPs   []RSVP         `json:"rsvps"`
	Artists []BilledArtist `json:"artists"`
}

type CreateShowRequest struct {
	Title    string    `json:"title" binding:"required"`
	DateTime time.Time `json:"date_time" binding:"required"`
	Venue    string    `json:"venue" binding:"required"`
	City     string    `json:"city"`
}

type UpdateShowRequest struct {
	Title    *string    `json:"title"`
	DateTime *time.Time `json:"date_time"`
	Venue    *string    `json:"venue"`
	City     *string    `json:"city"`
}

type RSVPRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// checks whether a status value is one of the accepted RSVP statuses
func ValidStatus(status string) bool {
	switch status {
	case StatusGoing, StatusMaybe, StatusNotGoing:
		return true
	default:
		return false
	}
}

// checks whether a billing position value is recognized
func ValidPosition(position string) bool {
	switch position {
	case PositionHeadliner, PositionSupport, PositionLocal:
		return true
	default:
		return false
	}
}
