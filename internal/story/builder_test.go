package story

import (
	"fmt"
	"testing"

	"codeberg.org/encore/server/internal/recap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intptr(n int) *int { return &n }

// a populated recap for a viewer ranked second out of three
func fullRecap() *recap.RecapData {
	return &recap.RecapData{
		Year: 2024,
		PersonalSummary: &recap.PersonalSummary{
			TotalShows:       8,
			BusiestMonth:     intptr(5),
			BusiestMonthName: "June",
			TopVenue:         "The Barn",
		},
		Leaderboard: []recap.LeaderboardEntry{
			{Name: "carol", DisplayName: "Carol", TotalShows: 12, MostActiveMonthCount: 4},
			{Name: "alice", DisplayName: "Alice", TotalShows: 8, MostActiveMonthCount: 3},
			{Name: "bob", DisplayName: "Bob", TotalShows: 3, MostActiveMonthCount: 2},
		},
		MonthlyData: []recap.MonthlySeries{
			{Name: "carol", DisplayName: "Carol", MonthlyCounts: [12]int{2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 0, 0}},
			{Name: "alice", DisplayName: "Alice", MonthlyCounts: [12]int{1, 0, 1, 1, 0, 3, 0, 1, 0, 1, 0, 0}},
			{Name: "bob", DisplayName: "Bob", MonthlyCounts: [12]int{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0}},
		},
		Stats: &recap.Stats{
			PersonalTotalShows: 8,
			PersonalTopVenues: []recap.NameCount{
				{Name: "The Barn", Count: 5},
				{Name: "Arena", Count: 3},
			},
			PersonalTopArtistsByPosition: recap.PositionBreakdown{
				Headliner: &recap.ArtistCount{Name: "Big Band", Count: 3},
			},
		},
	}
}

func kinds(slides []Slide) []Kind {
	out := make([]Kind, 0, len(slides))
	for _, s := range slides {
		out = append(out, s.Kind)
	}

	return out
}

func TestBuildSlides_FullRecapOrder(t *testing.T) {
	slides := BuildSlides(fullRecap(), "Alice")

	expected := []Kind{
		KindIntro,
		KindStat, // total shows
		KindStat, // avg per month
		KindStat, // busiest month
		KindStat, // top venue
		KindRank,
		KindChart,
		KindList, // top artists
		KindList, // top venues
		KindComparison,
		KindOutro,
	}

	assert.Equal(t, expected, kinds(slides))
}

func TestBuildSlides_AlwaysBracketed(t *testing.T) {
	data := &recap.RecapData{Year: 2024}

	slides := BuildSlides(data, "")

	require.GreaterOrEqual(t, len(slides), 2)
	assert.Equal(t, KindIntro, slides[0].Kind)
	assert.Equal(t, KindOutro, slides[len(slides)-1].Kind)
}

func TestBuildSlides_ZeroShowViewer(t *testing.T) {
	data := &recap.RecapData{
		Year:            2024,
		PersonalSummary: &recap.PersonalSummary{},
	}

	slides := BuildSlides(data, "stranger")

	// intro, total-shows stat with warm zero copy, outro; no avg, rank,
	// chart or comparison
	require.Len(t, slides, 3)
	assert.Equal(t, KindStat, slides[1].Kind)
	assert.Equal(t, "A quiet year on the show front", slides[1].Headline)
}

func TestBuildSlides_ThemesCycle(t *testing.T) {
	slides := BuildSlides(fullRecap(), "Alice")

	for i, s := range slides {
		assert.Equal(t, themePalette[i%len(themePalette)], s.Theme, "slide %d", i)
	}
}

func TestBuildSlides_Deterministic(t *testing.T) {
	first := BuildSlides(fullRecap(), "Alice")

	for range 5 {
		assert.Equal(t, first, BuildSlides(fullRecap(), "Alice"))
	}
}

func TestBuildSlides_ChartUsesViewerSeries(t *testing.T) {
	slides := BuildSlides(fullRecap(), "Alice")

	var chart *Slide
	for i := range slides {
		if slides[i].Kind == KindChart {
			chart = &slides[i]
			break
		}
	}

	require.NotNil(t, chart)
	require.NotNil(t, chart.Chart)
	require.Len(t, chart.Chart.Bars, 12)
	assert.Equal(t, "Jan", chart.Chart.Bars[0].Label)
	assert.Equal(t, 1, chart.Chart.Bars[0].Value, "viewer's own series, not the group total")
	assert.Equal(t, 3, chart.Chart.Bars[5].Value)
	assert.Contains(t, chart.Chart.Description, "June")
	assert.Equal(t, int(denseSlideDuration.Milliseconds()), chart.DurationMs)
}

func TestBuildSlides_ChartFallsBackToGroupTotals(t *testing.T) {
	data := fullRecap()

	slides := BuildSlides(data, "")

	var chart *Slide
	for i := range slides {
		if slides[i].Kind == KindChart {
			chart = &slides[i]
			break
		}
	}

	require.NotNil(t, chart)
	assert.Equal(t, 3, chart.Chart.Bars[0].Value, "January group total across all series")
}

func TestBuildSlides_BusiestMonthUsesViewerCounts(t *testing.T) {
	// a crowded year: eight users fill the monthly-series cut, the
	// viewer sits ninth with two shows of their own
	data := &recap.RecapData{
		Year: 2024,
		PersonalSummary: &recap.PersonalSummary{
			TotalShows:       2,
			BusiestMonth:     intptr(2),
			BusiestMonthName: "March",
		},
	}

	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("user%d", i)
		var counts [12]int
		counts[2] = 3
		counts[6] = 1

		data.Leaderboard = append(data.Leaderboard, recap.LeaderboardEntry{
			Name: name, DisplayName: name, TotalShows: 4, MostActiveMonthCount: 3,
		})
		data.MonthlyData = append(data.MonthlyData, recap.MonthlySeries{
			Name: name, DisplayName: name, MonthlyCounts: counts,
		})
	}

	data.Leaderboard = append(data.Leaderboard, recap.LeaderboardEntry{
		Name: "ida", DisplayName: "Ida", TotalShows: 2, MostActiveMonthCount: 2,
	})
	data.Stats = &recap.Stats{
		PersonalTotalShows:    2,
		PersonalMonthlyCounts: [12]int{0, 0, 2},
	}

	slides := BuildSlides(data, "Ida")

	var busiest, chart *Slide
	for i := range slides {
		switch {
		case slides[i].Title == "Busiest month":
			busiest = &slides[i]
		case slides[i].Kind == KindChart:
			chart = &slides[i]
		}
	}

	require.NotNil(t, busiest)
	assert.Equal(t, "2 shows in one month", busiest.Subtext, "viewer's own count, never the group total")

	require.NotNil(t, chart)
	assert.Equal(t, 2, chart.Chart.Bars[2].Value, "chart follows the viewer's own counts")
}

func TestBuildSlides_ComparisonViewerInTopN(t *testing.T) {
	slides := BuildSlides(fullRecap(), "Alice")

	var cmp *Slide
	for i := range slides {
		if slides[i].Kind == KindComparison {
			cmp = &slides[i]
			break
		}
	}

	require.NotNil(t, cmp)
	require.NotNil(t, cmp.Comparison)

	viewerRows := 0
	for _, entry := range cmp.Comparison.Entries {
		if entry.IsViewer {
			viewerRows++
			assert.Equal(t, "Alice", entry.DisplayName)
			assert.Equal(t, 2, entry.Rank)
		}
	}

	assert.Equal(t, 1, viewerRows, "viewer appears exactly once")
}

func TestBuildSlides_ComparisonViewerBelowCut(t *testing.T) {
	data := fullRecap()
	data.Leaderboard = []recap.LeaderboardEntry{
		{Name: "a", DisplayName: "A", TotalShows: 10},
		{Name: "b", DisplayName: "B", TotalShows: 9},
		{Name: "c", DisplayName: "C", TotalShows: 8},
		{Name: "d", DisplayName: "D", TotalShows: 7},
		{Name: "e", DisplayName: "E", TotalShows: 6},
		{Name: "f", DisplayName: "F", TotalShows: 5},
		{Name: "alice", DisplayName: "Alice", TotalShows: 1},
	}

	slides := BuildSlides(data, "Alice")

	var cmp *Slide
	for i := range slides {
		if slides[i].Kind == KindComparison {
			cmp = &slides[i]
			break
		}
	}

	require.NotNil(t, cmp)
	entries := cmp.Comparison.Entries
	require.Len(t, entries, comparisonTopN)

	last := entries[len(entries)-1]
	assert.True(t, last.IsViewer, "viewer replaces the last displayed row")
	assert.Equal(t, 7, last.Rank, "true rank is kept")
	assert.Equal(t, "Alice", last.DisplayName)

	viewerRows := 0
	for _, entry := range entries {
		if entry.IsViewer {
			viewerRows++
		}
	}
	assert.Equal(t, 1, viewerRows)
}

func TestBuildSlides_NoComparisonForAnonymousViewer(t *testing.T) {
	slides := BuildSlides(fullRecap(), "")

	for _, s := range slides {
		assert.NotEqual(t, KindComparison, s.Kind)
		assert.NotEqual(t, KindRank, s.Kind)
	}
}

func TestBuildSlides_TopVenuesNeedsTwo(t *testing.T) {
	data := fullRecap()
	data.Stats.PersonalTopVenues = data.Stats.PersonalTopVenues[:1]

	slides := BuildSlides(data, "Alice")

	listSlides := 0
	for _, s := range slides {
		if s.Kind == KindList {
			listSlides++
		}
	}

	assert.Equal(t, 1, listSlides, "only the artists list remains")
}
