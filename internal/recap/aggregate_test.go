package recap

import (
	"testing"
	"time"

	"codeberg.org/encore/server/encore/shows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed clock so ValidateYear is stable regardless of when tests run
var testNow = time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC)

func testAggregator(loc *time.Location) *Aggregator {
	agg := New(loc, 2023)
	agg.now = func() time.Time { return testNow }

	return agg
}

func show(id, title string, date time.Time, venue string, rsvps ...shows.RSVP) shows.ShowWithRSVPs {
	return shows.ShowWithRSVPs{
		Show: shows.Show{
			ID:       id,
			Title:    title,
			DateTime: date,
			Venue:    venue,
		},
		RSVPs: rsvps,
	}
}

func going(name string) shows.RSVP {
	return shows.RSVP{Name: name, Status: shows.StatusGoing}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "alice", NormalizeName("Alice"))
	assert.Equal(t, "alice", NormalizeName("  ALICE  "))
	assert.Equal(t, "bob", NormalizeName("bob "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestValidateYear(t *testing.T) {
	agg := testAggregator(time.UTC)

	assert.NoError(t, agg.ValidateYear(2023))
	assert.NoError(t, agg.ValidateYear(2024))
	assert.ErrorIs(t, agg.ValidateYear(2022), ErrInvalidYear)
	assert.ErrorIs(t, agg.ValidateYear(2025), ErrInvalidYear)
}

func TestAggregate_RejectsInvalidYear(t *testing.T) {
	agg := testAggregator(time.UTC)

	_, err := agg.Aggregate(1999, nil, "")
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestAggregate_NameGrouping(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "Opener", time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC), "The Barn",
			going("Alice")),
		show("s2", "Middle", time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC), "The Barn",
			going("alice")),
		show("s3", "Closer", time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC), "The Barn",
			going("  ALICE ")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.Leaderboard, 1)
	entry := data.Leaderboard[0]
	assert.Equal(t, "alice", entry.Name)
	assert.Equal(t, "Alice", entry.DisplayName, "first-seen casing wins")
	assert.Equal(t, 3, entry.TotalShows)
}

func TestAggregate_OnlyGoingCounts(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "Show", time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC), "Hall",
			going("alice"),
			shows.RSVP{Name: "bob", Status: shows.StatusMaybe},
			shows.RSVP{Name: "carol", Status: shows.StatusNotGoing},
			shows.RSVP{Name: "dave", Status: "something_else"},
		),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.Leaderboard, 1)
	assert.Equal(t, "alice", data.Leaderboard[0].Name)
}

func TestAggregate_DuplicateRSVPRowsCollapse(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "Show", time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC), "Hall",
			going("alice"), going("Alice")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.Leaderboard, 1)
	assert.Equal(t, 1, data.Leaderboard[0].TotalShows)
}

func TestAggregate_LeaderboardOrder(t *testing.T) {
	agg := testAggregator(time.UTC)

	// alice: 3 shows spread over 3 months (most active month = 1)
	// bob: 3 shows all in one month (most active month = 3) -> ranks above alice
	// carol: 4 shows -> first
	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), "V", going("alice"), going("bob"), going("carol")),
		show("s2", "B", time.Date(2024, 1, 12, 20, 0, 0, 0, time.UTC), "V", going("bob"), going("carol")),
		show("s3", "C", time.Date(2024, 1, 19, 20, 0, 0, 0, time.UTC), "V", going("bob"), going("carol")),
		show("s4", "D", time.Date(2024, 2, 5, 20, 0, 0, 0, time.UTC), "V", going("alice"), going("carol")),
		show("s5", "E", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "V", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.Leaderboard, 3)
	assert.Equal(t, "carol", data.Leaderboard[0].Name)
	assert.Equal(t, "bob", data.Leaderboard[1].Name, "month concentration breaks the tie")
	assert.Equal(t, "alice", data.Leaderboard[2].Name)
}

func TestAggregate_LeaderboardNameTieBreak(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), "V",
			going("zoe"), going("Ben"), going("amy")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.Leaderboard, 3)
	assert.Equal(t, "amy", data.Leaderboard[0].Name)
	assert.Equal(t, "ben", data.Leaderboard[1].Name)
	assert.Equal(t, "zoe", data.Leaderboard[2].Name)
}

func TestAggregate_MonthlyCountsSumToTotal(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), "V", going("alice")),
		show("s2", "B", time.Date(2024, 1, 20, 20, 0, 0, 0, time.UTC), "V", going("alice")),
		show("s3", "C", time.Date(2024, 7, 4, 20, 0, 0, 0, time.UTC), "V", going("alice")),
		show("s4", "D", time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), "V", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.Len(t, data.MonthlyData, 1)
	series := data.MonthlyData[0]

	sum := 0
	for _, c := range series.MonthlyCounts {
		sum += c
	}

	assert.Equal(t, data.Leaderboard[0].TotalShows, sum)
	assert.Equal(t, 2, series.MonthlyCounts[0])
	assert.Equal(t, 1, series.MonthlyCounts[6])
	assert.Equal(t, 1, series.MonthlyCounts[11])
}

func TestAggregate_TimezoneBucketing(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	agg := testAggregator(est)

	// 02:00 UTC on Feb 1 is still Jan 31 in EST
	rows := []shows.ShowWithRSVPs{
		show("s1", "Late One", time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC), "V", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "alice")
	require.NoError(t, err)

	require.Len(t, data.MonthlyData, 1)
	assert.Equal(t, 1, data.MonthlyData[0].MonthlyCounts[0], "bucketed into January")
	assert.Equal(t, 0, data.MonthlyData[0].MonthlyCounts[1])
}

func TestAggregate_PersonalSummary(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Hall", going("Alice")),
		show("s2", "B", time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC), "Hall", going("Alice")),
		show("s3", "C", time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC), "Arena", going("Alice")),
	}

	data, err := agg.Aggregate(2024, rows, "alice")
	require.NoError(t, err)

	require.NotNil(t, data.PersonalSummary)
	summary := data.PersonalSummary
	assert.Equal(t, 3, summary.TotalShows)
	require.NotNil(t, summary.BusiestMonth)
	assert.Equal(t, 2, *summary.BusiestMonth, "March is index 2")
	assert.Equal(t, "March", summary.BusiestMonthName)
	assert.Equal(t, "Hall", summary.TopVenue)

	require.NotNil(t, data.Stats)
	assert.Equal(t, [12]int{0, 0, 2, 0, 1}, data.Stats.PersonalMonthlyCounts)
}

func TestAggregate_UnknownViewerGetsZeroSummary(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Hall", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "stranger")
	require.NoError(t, err)

	require.NotNil(t, data.PersonalSummary)
	assert.Equal(t, 0, data.PersonalSummary.TotalShows)
	assert.Nil(t, data.PersonalSummary.BusiestMonth)
}

func TestAggregate_NoViewerNoSummary(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Hall", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	assert.Nil(t, data.PersonalSummary)
}

func TestAggregate_BackToBackNights(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "Night One", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), "V", going("alice")),
		show("s2", "Night Two", time.Date(2024, 1, 6, 21, 0, 0, 0, time.UTC), "V", going("alice")),
		show("s3", "Later", time.Date(2024, 1, 20, 20, 0, 0, 0, time.UTC), "V", going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "alice")
	require.NoError(t, err)

	require.NotNil(t, data.Stats)
	b2b := data.Stats.PersonalBackToBackNights
	assert.Equal(t, 1, b2b.Count)
	require.Len(t, b2b.Examples, 1)
	assert.Equal(t, [2]string{"2024-01-05", "2024-01-06"}, b2b.Examples[0])

	assert.Equal(t, 14, data.Stats.PersonalLongestGapDays)
}

func TestAggregate_GroupStats(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "Big Night", time.Date(2024, 2, 5, 20, 0, 0, 0, time.UTC), "Hall",
			going("alice"), going("bob"), going("carol")),
		show("s2", "Solo One", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Cave",
			going("alice")),
		show("s3", "Solo Two", time.Date(2024, 4, 5, 20, 0, 0, 0, time.UTC), "Cave",
			going("alice")),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	require.NotNil(t, data.Stats)
	st := data.Stats

	// 3 + 1 + 1 attendances across 3 distinct shows
	assert.Equal(t, 5, st.GroupTotalAttendance)
	assert.Equal(t, 3, st.GroupDistinctShows)

	require.NotNil(t, st.GroupMostPeopleInOneShow)
	assert.Equal(t, "s1", st.GroupMostPeopleInOneShow.ShowID)
	assert.Equal(t, 3, st.GroupMostPeopleInOneShow.Count)

	require.NotNil(t, st.GroupMostSoloShows)
	assert.Equal(t, "alice", st.GroupMostSoloShows.Name)
	assert.Equal(t, 2, st.GroupMostSoloShows.Count)

	require.NotNil(t, st.GroupMostActiveUser)
	assert.Equal(t, "alice", st.GroupMostActiveUser.Name)
	assert.Equal(t, 3, st.GroupMostActiveUser.Count)

	require.NotNil(t, st.GroupBusiestMonth)
	assert.Equal(t, 1, st.GroupBusiestMonth.Month, "February has 3 attendances")

	require.NotNil(t, st.GroupTopVenue)
	assert.Equal(t, "Hall", st.GroupTopVenue.Name)
}

func TestAggregate_GroupTopArtistWeightedByAttendance(t *testing.T) {
	agg := testAggregator(time.UTC)

	crowd := show("s1", "Crowded", time.Date(2024, 2, 5, 20, 0, 0, 0, time.UTC), "Hall",
		going("alice"), going("bob"), going("carol"))
	crowd.Artists = []shows.BilledArtist{
		{ArtistID: "a1", Name: "Headline Act", Position: shows.PositionHeadliner},
	}

	quiet1 := show("s2", "Quiet A", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Cave", going("alice"))
	quiet1.Artists = []shows.BilledArtist{
		{ArtistID: "a2", Name: "Cult Favorite", Position: shows.PositionHeadliner},
	}

	quiet2 := show("s3", "Quiet B", time.Date(2024, 4, 5, 20, 0, 0, 0, time.UTC), "Cave", going("alice"))
	quiet2.Artists = []shows.BilledArtist{
		{ArtistID: "a2", Name: "Cult Favorite", Position: shows.PositionHeadliner},
	}

	data, err := agg.Aggregate(2024, []shows.ShowWithRSVPs{crowd, quiet1, quiet2}, "")
	require.NoError(t, err)

	require.NotNil(t, data.Stats.GroupTopArtist)

	// 3 attendees at one show beats 1 attendee at two shows
	assert.Equal(t, "Headline Act", data.Stats.GroupTopArtist.Name)
	assert.Equal(t, 3, data.Stats.GroupTopArtist.Count)
}

func TestAggregate_TopArtistsByPosition(t *testing.T) {
	agg := testAggregator(time.UTC)

	s1 := show("s1", "A", time.Date(2024, 2, 5, 20, 0, 0, 0, time.UTC), "Hall", going("alice"))
	s1.Artists = []shows.BilledArtist{
		{ArtistID: "a1", Name: "Big Band", Position: shows.PositionHeadliner},
		{ArtistID: "a2", Name: "Supporters", Position: shows.PositionSupport},
	}

	s2 := show("s2", "B", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), "Hall", going("alice"))
	s2.Artists = []shows.BilledArtist{
		{ArtistID: "a1", Name: "Big Band", Position: shows.PositionHeadliner},
		{ArtistID: "a3", Name: "Local Heroes", Position: shows.PositionLocal},
	}

	data, err := agg.Aggregate(2024, []shows.ShowWithRSVPs{s1, s2}, "alice")
	require.NoError(t, err)

	breakdown := data.Stats.PersonalTopArtistsByPosition
	require.NotNil(t, breakdown.Headliner)
	assert.Equal(t, "Big Band", breakdown.Headliner.Name)
	assert.Equal(t, 2, breakdown.Headliner.Count)
	require.NotNil(t, breakdown.Support)
	assert.Equal(t, "Supporters", breakdown.Support.Name)
	require.NotNil(t, breakdown.Local)
	assert.Equal(t, "Local Heroes", breakdown.Local.Name)
}

func TestAggregate_Deterministic(t *testing.T) {
	agg := testAggregator(time.UTC)

	rows := []shows.ShowWithRSVPs{
		show("s1", "A", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), "V1",
			going("zoe"), going("amy"), going("ben"), going("cat")),
		show("s2", "B", time.Date(2024, 2, 5, 20, 0, 0, 0, time.UTC), "V2",
			going("amy"), going("ben")),
	}

	first, err := agg.Aggregate(2024, rows, "amy")
	require.NoError(t, err)

	for range 10 {
		again, err := agg.Aggregate(2024, rows, "amy")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAggregate_EmptyYear(t *testing.T) {
	agg := testAggregator(time.UTC)

	data, err := agg.Aggregate(2024, nil, "")
	require.NoError(t, err)

	assert.Empty(t, data.Leaderboard)
	assert.Empty(t, data.MonthlyData)
	assert.Nil(t, data.Stats)
	assert.Nil(t, data.PersonalSummary)
}

func TestAggregate_MonthlySeriesCap(t *testing.T) {
	agg := testAggregator(time.UTC)

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	rsvps := make([]shows.RSVP, 0, len(names))
	for _, n := range names {
		rsvps = append(rsvps, going(n))
	}

	rows := []shows.ShowWithRSVPs{
		show("s1", "Everyone", time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC), "V", rsvps...),
	}

	data, err := agg.Aggregate(2024, rows, "")
	require.NoError(t, err)

	assert.Len(t, data.Leaderboard, 10)
	assert.Len(t, data.MonthlyData, maxMonthlySeries)

	// colors follow leaderboard order
	for i, series := range data.MonthlyData {
		assert.Equal(t, seriesPalette[i%len(seriesPalette)], series.Color)
		assert.Equal(t, data.Leaderboard[i].Name, series.Name)
	}
}
