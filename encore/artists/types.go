package artists

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	MBID      string    `json:"mbid,omitempty"` // MusicBrainz id when linked from catalog search
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// a tracked upcoming or past release by an artist
type Release struct {
	ID          string    `json:"id"`
	ArtistID    string    `json:"artist_id"`
	ArtistName  string    `json:"artist_name,omitempty"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	Kind        string    `json:"kind,omitempty"` // album, ep, single
	CreatedAt   time.Time `json:"created_at"`
}

type CreateArtistRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
	MBID     string `json:"mbid"`
}

type UpdateArtistRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
	MBID     *string `json:"mbid"`
}

type CreateReleaseRequest struct {
	Title       string    `json:"title" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Kind        string    `json:"kind"`
}

type BillArtistRequest struct {
	ArtistID string `json:"artist_id" binding:"required"`
	Position string `json:"position" binding:"required"`
}
