package recap

import "time"

// RecapData is the aggregation output consumed by the web UI and the
// story slide builder. Field names are a documented contract with the
// presentation layer; renaming any of them breaks the UI.
type RecapData struct {
	Year            int                `json:"year"`
	PersonalSummary *PersonalSummary   `json:"personalSummary,omitempty"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	MonthlyData     []MonthlySeries    `json:"monthlyData"`
	Stats           *Stats             `json:"stats,omitempty"`
}

// summary for the designated current user
type PersonalSummary struct {
	TotalShows int `json:"totalShows"`

	// calendar month index 0-11 in the reference timezone; nil when zero shows
	BusiestMonth     *int   `json:"busiestMonth,omitempty"`
	BusiestMonthName string `json:"busiestMonthName,omitempty"`
	TopVenue         string `json:"topVenue,omitempty"`
}

type LeaderboardEntry struct {
	// normalized grouping key (lower-cased, trimmed)
	Name string `json:"name"`

	// first-seen original casing
	DisplayName string `json:"displayName"`

	TotalShows int `json:"totalShows"`

	// max of the user's monthly counts; tie-break only, never the primary sort key
	MostActiveMonthCount int `json:"mostActiveMonthCount"`
}

// one user's monthly attendance series for the trend chart
type MonthlySeries struct {
	Name          string  `json:"name"`
	DisplayName   string  `json:"displayName"`
	Color         string  `json:"color"`
	MonthlyCounts [12]int `json:"monthlyCounts"`
}

// extended group-wide and personal deep statistics
type Stats struct {
	PersonalTotalShows           int               `json:"personalTotalShows"`
	PersonalMonthlyCounts        [12]int           `json:"personalMonthlyCounts"`
	PersonalFirstShow            *ShowRef          `json:"personalFirstShow,omitempty"`
	PersonalLastShow             *ShowRef          `json:"personalLastShow,omitempty"`
	PersonalLongestGapDays       int               `json:"personalLongestGapDays"`
	PersonalBackToBackNights     BackToBackNights  `json:"personalBackToBackNights"`
	PersonalMonthStreak          int               `json:"personalMonthStreak"`
	PersonalMostCommonDay        string            `json:"personalMostCommonDay,omitempty"`
	PersonalTopVenues            []NameCount       `json:"personalTopVenues,omitempty"`
	PersonalTopArtistsByPosition PositionBreakdown `json:"personalTopArtistsByPosition"`

	GroupTotalAttendance      int               `json:"groupTotalAttendance"`
	GroupDistinctShows        int               `json:"groupDistinctShows"`
	GroupMostPeopleInOneShow  *ShowCount        `json:"groupMostPeopleInOneShow,omitempty"`
	GroupMostSoloShows        *NameCount        `json:"groupMostSoloShows,omitempty"`
	GroupMostActiveUser       *NameCount        `json:"groupMostActiveUser,omitempty"`
	GroupBusiestMonth         *MonthCount       `json:"groupBusiestMonth,omitempty"`
	GroupTopVenue             *NameCount        `json:"groupTopVenue,omitempty"`
	GroupTopArtist            *NameCount        `json:"groupTopArtist,omitempty"`
	GroupTopArtistsByPosition PositionBreakdown `json:"groupTopArtistsByPosition"`
}

// a show reference for first/last show display
type ShowRef struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Venue string    `json:"venue"`
}

type ShowCount struct {
	ShowID string `json:"showId"`
	Title  string `json:"title"`
	Count  int    `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthCount struct {
	// calendar month index 0-11
	Month int    `json:"month"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// back-to-back night detection result: adjacent attended dates exactly
// one calendar day apart
type BackToBackNights struct {
	Count int `json:"count"`

	// up to maxBackToBackExamples example pairs, dates formatted 2006-01-02
	Examples [][2]string `json:"examples,omitempty"`
}

// top artist per billing position. JSON keys are capitalized by UI contract.
type PositionBreakdown struct {
	Headliner *ArtistCount `json:"Headliner,omitempty"`
	Support   *ArtistCount `json:"Support,omitempty"`
	Local     *ArtistCount `json:"Local,omitempty"`
}

type ArtistCount struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	ImageURL string `json:"image,omitempty"`
}

// UserYearStat holds one user's derived statistics for the year.
// Keyed by normalized name in the aggregation accumulator.
type UserYearStat struct {
	Name                 string
	DisplayName          string
	TotalShows           int
	MonthlyCounts        [12]int
	VenueCounts          map[string]int
	TopArtistsByPosition PositionBreakdown
	FirstShow            *ShowRef
	LastShow             *ShowRef
	LongestGapDays       int
	BackToBackNights     BackToBackNights
	MonthStreak          int
	MostCommonDay        string
	MostActiveMonthCount int
}
