package recap

import "codeberg.org/encore/server/internal/story"

// SlidesResponse wraps the ordered story slides for a recap year
type SlidesResponse struct {
	Year   int           `json:"year"`
	Viewer string        `json:"viewer,omitempty"`
	Slides []story.Slide `json:"slides"`
}

// ShareResponse carries the emoji share text for a recap year
type ShareResponse struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}
