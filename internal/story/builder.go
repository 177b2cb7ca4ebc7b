package story

import (
	"fmt"
	"time"

	"codeberg.org/encore/server/internal/recap"
)

const (
	// leaderboard rows shown on the comparison slide
	comparisonTopN = 5

	// auto-advance override for data-dense slides
	denseSlideDuration = 8 * time.Second
)

// BuildSlides maps a recap into the fixed narrative slide order:
// intro, total shows, avg/month, busiest month, top venue, rank,
// monthly trend chart, top artists, top venues, group comparison,
// outro. Slides whose data is absent are skipped, but the sequence is
// never shorter than intro plus outro. Themes cycle through the
// palette in emitted order, so the same recap always builds the same
// slides.
func BuildSlides(data *recap.RecapData, viewer string) []Slide {
	viewerKey := recap.NormalizeName(viewer)
	displayName, rank := viewerRank(data, viewerKey)
	totalShows := 0

	if data.PersonalSummary != nil {
		totalShows = data.PersonalSummary.TotalShows
	}

	var slides []Slide

	slides = append(slides, newTextSlide(KindIntro, introCopy(data.Year, displayName), "🎤"))

	if data.PersonalSummary != nil {
		slides = append(slides, newTextSlide(KindStat, totalShowsCopy(totalShows), "🎟️"))
	}

	if totalShows > 0 {
		slides = append(slides, newTextSlide(KindStat, avgPerMonthCopy(float64(totalShows)/12), "📊"))
	}

	if data.PersonalSummary != nil && data.PersonalSummary.BusiestMonthName != "" {
		count := 0
		if data.PersonalSummary.BusiestMonth != nil {
			count = monthCount(data, viewerKey, *data.PersonalSummary.BusiestMonth)
		}

		slides = append(slides, newTextSlide(KindStat, busiestMonthCopy(data.PersonalSummary.BusiestMonthName, count), "📅"))
	}

	if data.PersonalSummary != nil && data.PersonalSummary.TopVenue != "" {
		count := venueCount(data, data.PersonalSummary.TopVenue)
		slides = append(slides, newTextSlide(KindStat, topVenueCopy(data.PersonalSummary.TopVenue, count), "🏟️"))
	}

	if rank > 0 && totalShows > 0 {
		rc := rankCopy(rank, len(data.Leaderboard))
		slide := newTextSlide(KindRank, rc.Copy, "🏆")
		slide.Subtext = rc.Subtext
		slides = append(slides, slide)
	}

	if chart, ok := buildChartSlide(data, viewerKey); ok {
		slides = append(slides, chart)
	}

	if list, ok := buildTopArtistsSlide(data); ok {
		slides = append(slides, list)
	}

	if list, ok := buildTopVenuesSlide(data); ok {
		slides = append(slides, list)
	}

	if cmp, ok := buildComparisonSlide(data, viewerKey); ok {
		slides = append(slides, cmp)
	}

	slides = append(slides, newTextSlide(KindOutro, outroCopy(data.Year, totalShows), "👋"))

	// themes cycle through the palette in emitted order
	for i := range slides {
		slides[i].Theme = themePalette[i%len(themePalette)]
	}

	return slides
}

func viewerRank(data *recap.RecapData, viewerKey string) (string, int) {
	if viewerKey == "" {
		return "", 0
	}

	for i, entry := range data.Leaderboard {
		if entry.Name == viewerKey {
			return entry.DisplayName, i + 1
		}
	}

	return "", 0
}

// the viewer's count for a month: their trend series when displayed,
// otherwise their own counts carried on the stats block. This backs a
// personal stat, so group totals are never substituted.
func monthCount(data *recap.RecapData, viewerKey string, month int) int {
	for _, series := range data.MonthlyData {
		if series.Name == viewerKey {
			return series.MonthlyCounts[month]
		}
	}

	if data.Stats != nil {
		return data.Stats.PersonalMonthlyCounts[month]
	}

	return 0
}

func sumCounts(counts [12]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}

	return total
}

func venueCount(data *recap.RecapData, venue string) int {
	if data.Stats == nil {
		return 0
	}

	for _, v := range data.Stats.PersonalTopVenues {
		if v.Name == venue {
			return v.Count
		}
	}

	return 0
}

// the monthly trend chart: the viewer's own counts when available
// (their displayed series, else the stats block), otherwise the group
// total per month. Requires at least one non-zero count.
func buildChartSlide(data *recap.RecapData, viewerKey string) (Slide, bool) {
	var counts [12]int
	found := false

	for _, series := range data.MonthlyData {
		if series.Name == viewerKey {
			counts = series.MonthlyCounts
			found = true
			break
		}
	}

	if !found && viewerKey != "" && data.Stats != nil && sumCounts(data.Stats.PersonalMonthlyCounts) > 0 {
		counts = data.Stats.PersonalMonthlyCounts
		found = true
	}

	if !found {
		for _, series := range data.MonthlyData {
			for i, c := range series.MonthlyCounts {
				counts[i] += c
			}
		}
	}

	peak, peakMonth := 0, 0
	total := 0

	for i, c := range counts {
		total += c
		if c > peak {
			peak, peakMonth = c, i
		}
	}

	if total == 0 {
		return Slide{}, false
	}

	bars := make([]Bar, 12)
	for i, c := range counts {
		bars[i] = Bar{Label: time.Month(i + 1).String()[:3], Value: c}
	}

	description := fmt.Sprintf(
		"Bar chart of shows per month, peaking in %s with %d %s",
		time.Month(peakMonth+1).String(), peak, pluralShows(peak),
	)

	slide := newChartSlide("Your year, month by month", bars, description)
	slide.DurationMs = int(denseSlideDuration / time.Millisecond)

	return slide, true
}

// top artists the viewer saw, one per billing position
func buildTopArtistsSlide(data *recap.RecapData) (Slide, bool) {
	if data.Stats == nil {
		return Slide{}, false
	}

	breakdown := data.Stats.PersonalTopArtistsByPosition
	var items []ListItem

	add := func(badge string, a *recap.ArtistCount) {
		if a != nil {
			items = append(items, ListItem{Label: a.Name, Value: a.Count, Badge: badge, Image: a.ImageURL})
		}
	}

	add("Headliner", breakdown.Headliner)
	add("Support", breakdown.Support)
	add("Local", breakdown.Local)

	if len(items) == 0 {
		return Slide{}, false
	}

	return newListSlide("Artists you kept coming back to", items), true
}

// the viewer's most-visited venues; needs at least two known venues
func buildTopVenuesSlide(data *recap.RecapData) (Slide, bool) {
	if data.Stats == nil || len(data.Stats.PersonalTopVenues) < 2 {
		return Slide{}, false
	}

	var items []ListItem
	for _, v := range data.Stats.PersonalTopVenues {
		items = append(items, ListItem{Label: v.Name, Value: v.Count})
	}

	return newListSlide("Your venues", items), true
}

// group comparison: top-N leaderboard rows with the viewer always
// included exactly once. A viewer below the cut replaces the last
// displayed row, keeping their true rank.
func buildComparisonSlide(data *recap.RecapData, viewerKey string) (Slide, bool) {
	if viewerKey == "" || len(data.Leaderboard) < 2 {
		return Slide{}, false
	}

	viewerIdx := -1
	for i, entry := range data.Leaderboard {
		if entry.Name == viewerKey {
			viewerIdx = i
			break
		}
	}

	if viewerIdx < 0 {
		return Slide{}, false
	}

	limit := comparisonTopN
	if limit > len(data.Leaderboard) {
		limit = len(data.Leaderboard)
	}

	var entries []ComparisonEntry

	for i := 0; i < limit; i++ {
		entries = append(entries, comparisonEntry(i+1, data.Leaderboard[i], i == viewerIdx))
	}

	if viewerIdx >= limit {
		entries[len(entries)-1] = comparisonEntry(viewerIdx+1, data.Leaderboard[viewerIdx], true)
	}

	slide := newComparisonSlide("How the crew stacked up", entries)
	slide.DurationMs = int(denseSlideDuration / time.Millisecond)

	return slide, true
}
