package story

import "codeberg.org/encore/server/internal/recap"

// slide kinds; renderers switch exhaustively on Kind
type Kind string

const (
	KindIntro      Kind = "intro"
	KindStat       Kind = "stat"
	KindRank       Kind = "rank"
	KindChart      Kind = "chart"
	KindList       Kind = "list"
	KindComparison Kind = "comparison"
	KindOutro      Kind = "outro"
)

// visual themes, assigned by cycling through the palette in builder order
type Theme string

var themePalette = [5]Theme{"midnight", "sunset", "neon", "violet", "ember"}

// Slide is one screen of the recap story. Kind discriminates which of
// the payload fields are set: text kinds (intro, stat, rank, outro)
// carry only the text fields; chart, list and comparison add their
// payload struct. Slides are immutable once built.
type Slide struct {
	Kind  Kind  `json:"kind"`
	Theme Theme `json:"theme"`

	// auto-advance override in milliseconds; 0 means the player default
	DurationMs int `json:"durationMs,omitempty"`

	Title    string `json:"title"`
	Headline string `json:"headline,omitempty"`
	Subtext  string `json:"subtext,omitempty"`
	Emoji    string `json:"emoji,omitempty"`

	Chart      *ChartPayload      `json:"chart,omitempty"`
	List       []ListItem         `json:"list,omitempty"`
	Comparison *ComparisonPayload `json:"comparison,omitempty"`
}

type ChartPayload struct {
	Bars []Bar `json:"bars"`

	// accessible description of the chart for screen readers
	Description string `json:"description"`
}

type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ListItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Badge string `json:"badge,omitempty"`
	Image string `json:"image,omitempty"`
}

type ComparisonPayload struct {
	Entries []ComparisonEntry `json:"entries"`
}

type ComparisonEntry struct {
	Rank        int    `json:"rank"`
	DisplayName string `json:"displayName"`
	TotalShows  int    `json:"totalShows"`

	// marks the viewing user's row
	IsViewer bool `json:"isViewer"`
}

// one constructor per kind

func newTextSlide(kind Kind, c Copy, emoji string) Slide {
	return Slide{
		Kind:     kind,
		Title:    c.Title,
		Headline: c.Headline,
		Subtext:  c.Subtext,
		Emoji:    emoji,
	}
}

func newChartSlide(title string, bars []Bar, description string) Slide {
	return Slide{
		Kind:  KindChart,
		Title: title,
		Chart: &ChartPayload{Bars: bars, Description: description},
	}
}

func newListSlide(title string, items []ListItem) Slide {
	return Slide{
		Kind:  KindList,
		Title: title,
		List:  items,
	}
}

func newComparisonSlide(title string, entries []ComparisonEntry) Slide {
	return Slide{
		Kind:       KindComparison,
		Title:      title,
		Comparison: &ComparisonPayload{Entries: entries},
	}
}

// convenience for building comparison entries from leaderboard rows
func comparisonEntry(rank int, e recap.LeaderboardEntry, isViewer bool) ComparisonEntry {
	return ComparisonEntry{
		Rank:        rank,
		DisplayName: e.DisplayName,
		TotalShows:  e.TotalShows,
		IsViewer:    isViewer,
	}
}
