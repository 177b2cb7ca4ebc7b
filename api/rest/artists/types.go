package artists

import (
	"codeberg.org/encore/server/api/rest/pagination"
	"codeberg.org/encore/server/encore/artists"
)

// ArtistsListResponse wraps a list of artists with pagination
type ArtistsListResponse struct {
	Artists    []artists.Artist `json:"artists"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ReleasesResponse wraps a list of releases
type ReleasesResponse struct {
	Releases []artists.Release `json:"releases"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
