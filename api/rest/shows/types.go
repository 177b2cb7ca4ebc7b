package shows

import (
	"codeberg.org/encore/server/api/rest/pagination"
	"codeberg.org/encore/server/encore/shows"
)

// ShowsListResponse wraps a list of shows with pagination
type ShowsListResponse struct {
	Shows      []shows.Show    `json:"shows"`
	Pagination pagination.Meta `json:"pagination"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
