package catalog

import "codeberg.org/encore/server/internal/catalog"

// SearchResponse wraps artist results from the external catalog
type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []catalog.ArtistResult `json:"results"`
}
