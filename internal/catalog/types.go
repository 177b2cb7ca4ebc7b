package catalog

// a single artist hit from the catalog search
type ArtistResult struct {
	MBID           string `json:"mbid"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation,omitempty"`
	Country        string `json:"country,omitempty"`
	Type           string `json:"type,omitempty"` // Person, Group, ...
	Score          int    `json:"score"`
}

// MusicBrainz artist search response shape (subset)
type searchResponse struct {
	Count   int                `json:"count"`
	Artists []searchResultItem `json:"artists"`
}

type searchResultItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation"`
	Country        string `json:"country"`
	Type           string `json:"type"`
	Score          int    `json:"score"`
}
