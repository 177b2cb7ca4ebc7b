package recap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"codeberg.org/encore/server/encore/shows"
)

var ErrInvalidYear = errors.New("year outside supported range")

const (
	// leaderboard users included in the monthly trend chart
	maxMonthlySeries = 8

	// example date pairs reported for back-to-back nights
	maxBackToBackExamples = 3
)

// display colors assigned to monthly series by leaderboard order
var seriesPalette = []string{
	"#f472b6", "#60a5fa", "#34d399", "#fbbf24",
	"#a78bfa", "#fb7185", "#38bdf8", "#4ade80",
}

// Aggregator turns a year's show and RSVP rows into RecapData.
// All month and weekday bucketing happens in loc, the reference
// timezone, so the recap reflects the audience's local calendar.
// Year boundaries are computed in loc as well, for consistency.
type Aggregator struct {
	loc        *time.Location
	launchYear int

	// injectable for tests
	now func() time.Time
}

func New(loc *time.Location, launchYear int) *Aggregator {
	return &Aggregator{
		loc:        loc,
		launchYear: launchYear,
		now:        time.Now,
	}
}

// Location returns the reference timezone used for bucketing.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// rejects years before the launch year or after the current year
func (a *Aggregator) ValidateYear(year int) error {
	current := a.now().In(a.loc).Year()

	if year < a.launchYear || year > current {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidYear, year, a.launchYear, current)
	}

	return nil
}

// Aggregate folds a year's rows into RecapData for an optional current
// user. Given the same input it produces byte-identical output: every
// ordering that reaches the result goes through an explicit sort, and
// map iteration never decides a tie.
func (a *Aggregator) Aggregate(year int, rows []shows.ShowWithRSVPs, currentUser string) (*RecapData, error) {
	if err := a.ValidateYear(year); err != nil {
		return nil, err
	}

	users := a.fold(rows)
	stats := a.deriveUserStats(users)
	leaderboard := buildLeaderboard(stats)

	data := &RecapData{
		Year:        year,
		Leaderboard: leaderboard,
		MonthlyData: buildMonthlySeries(leaderboard, users),
	}

	viewerKey := NormalizeName(currentUser)
	if viewer, ok := lookupStat(stats, viewerKey); ok {
		data.PersonalSummary = buildPersonalSummary(viewer)
	} else if currentUser != "" {
		// known viewer with no attendance still gets an explicit zero summary
		data.PersonalSummary = &PersonalSummary{}
	}

	if len(stats) > 0 {
		data.Stats = a.buildStats(rows, stats, leaderboard, viewerKey)
	}

	return data, nil
}

// NormalizeName produces the grouping key for an RSVP name:
// case-folded and trimmed. The display form keeps the first-seen
// original (trimmed) casing.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// per-user running accumulator, keyed by normalized name
type userAccumulator struct {
	displayName string
	showIDs     map[string]struct{}
	monthly     [12]int
	venues      map[string]int
	weekdays    [7]int

	// position -> artist name -> count and image
	positions map[string]map[string]*artistTally

	firstShow *ShowRef
	lastShow  *ShowRef

	// distinct attended civil dates in the reference timezone,
	// stored as UTC midnights so day arithmetic is exact across DST
	dates map[time.Time]struct{}
}

type artistTally struct {
	count int
	image string
}

// one pass over the input rows building per-user accumulators.
// Only RSVPs with status "going" count; unrecognized statuses are
// skipped, never fatal. Duplicate RSVP rows for the same (user, show)
// collapse through the show-id set.
func (a *Aggregator) fold(rows []shows.ShowWithRSVPs) map[string]*userAccumulator {
	users := make(map[string]*userAccumulator)

	for i := range rows {
		show := &rows[i]
		local := show.DateTime.In(a.loc)
		monthIdx := int(local.Month()) - 1
		weekday := int(local.Weekday())
		civil := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

		for _, rsvp := range show.RSVPs {
			if rsvp.Status != shows.StatusGoing {
				continue
			}

			key := NormalizeName(rsvp.Name)
			if key == "" {
				continue
			}

			acc, ok := users[key]
			if !ok {
				// first-seen casing wins for the display name
				acc = &userAccumulator{
					displayName: strings.TrimSpace(rsvp.Name),
					showIDs:     make(map[string]struct{}),
					venues:      make(map[string]int),
					positions:   make(map[string]map[string]*artistTally),
					dates:       make(map[time.Time]struct{}),
				}
				users[key] = acc
			}

			if _, seen := acc.showIDs[show.ID]; seen {
				continue // duplicate RSVP row for the same show
			}

			acc.showIDs[show.ID] = struct{}{}
			acc.monthly[monthIdx]++
			acc.weekdays[weekday]++
			acc.venues[show.Venue]++
			acc.dates[civil] = struct{}{}

			for _, artist := range show.Artists {
				byArtist, ok := acc.positions[artist.Position]
				if !ok {
					byArtist = make(map[string]*artistTally)
					acc.positions[artist.Position] = byArtist
				}

				tally, ok := byArtist[artist.Name]
				if !ok {
					tally = &artistTally{image: artist.ImageURL}
					byArtist[artist.Name] = tally
				}
				tally.count++
			}

			ref := &ShowRef{ID: show.ID, Title: show.Title, Date: show.DateTime, Venue: show.Venue}

			if acc.firstShow == nil || show.DateTime.Before(acc.firstShow.Date) {
				acc.firstShow = ref
			}

			if acc.lastShow == nil || show.DateTime.After(acc.lastShow.Date) {
				acc.lastShow = ref
			}
		}
	}

	return users
}

// derives per-user year stats from accumulators, sorted for determinism
func (a *Aggregator) deriveUserStats(users map[string]*userAccumulator) []UserYearStat {
	stats := make([]UserYearStat, 0, len(users))

	for key, acc := range users {
		dates := sortedDates(acc.dates)

		stat := UserYearStat{
			Name:                 key,
			DisplayName:          acc.displayName,
			TotalShows:           len(acc.showIDs),
			MonthlyCounts:        acc.monthly,
			VenueCounts:          acc.venues,
			TopArtistsByPosition: topArtistsByPosition(acc.positions),
			FirstShow:            acc.firstShow,
			LastShow:             acc.lastShow,
			LongestGapDays:       longestGapDays(dates),
			BackToBackNights:     backToBackNights(dates),
			MonthStreak:          monthStreak(acc.monthly),
			MostCommonDay:        mostCommonDay(acc.weekdays),
			MostActiveMonthCount: maxOf(acc.monthly[:]),
		}

		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})

	return stats
}

// leaderboard total order: totalShows desc, mostActiveMonthCount desc,
// displayName ascending (case-insensitive, then case-sensitive, then
// normalized key) so no two distinct users ever compare equal
func buildLeaderboard(stats []UserYearStat) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(stats))

	for _, s := range stats {
		entries = append(entries, LeaderboardEntry{
			Name:                 s.Name,
			DisplayName:          s.DisplayName,
			TotalShows:           s.TotalShows,
			MostActiveMonthCount: s.MostActiveMonthCount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.TotalShows != b.TotalShows {
			return a.TotalShows > b.TotalShows
		}

		if a.MostActiveMonthCount != b.MostActiveMonthCount {
			return a.MostActiveMonthCount > b.MostActiveMonthCount
		}

		af, bf := strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)
		if af != bf {
			return af < bf
		}

		if a.DisplayName != b.DisplayName {
			return a.DisplayName < b.DisplayName
		}

		return a.Name < b.Name
	})

	return entries
}

// monthly trend series for the top users in leaderboard order, with
// colors assigned by position in that order
func buildMonthlySeries(leaderboard []LeaderboardEntry, users map[string]*userAccumulator) []MonthlySeries {
	limit := len(leaderboard)
	if limit > maxMonthlySeries {
		limit = maxMonthlySeries
	}

	series := make([]MonthlySeries, 0, limit)

	for i := 0; i < limit; i++ {
		entry := leaderboard[i]
		acc := users[entry.Name]

		series = append(series, MonthlySeries{
			Name:          entry.Name,
			DisplayName:   entry.DisplayName,
			Color:         seriesPalette[i%len(seriesPalette)],
			MonthlyCounts: acc.monthly,
		})
	}

	return series
}

func buildPersonalSummary(stat UserYearStat) *PersonalSummary {
	summary := &PersonalSummary{TotalShows: stat.TotalShows}

	if stat.TotalShows == 0 {
		return summary
	}

	if month, ok := busiestMonth(stat.MonthlyCounts); ok {
		summary.BusiestMonth = &month
		summary.BusiestMonthName = time.Month(month + 1).String()
	}

	if top, ok := topByCount(stat.VenueCounts); ok {
		summary.TopVenue = top.Name
	}

	return summary
}

func lookupStat(stats []UserYearStat, key string) (UserYearStat, bool) {
	if key == "" {
		return UserYearStat{}, false
	}

	for _, s := range stats {
		if s.Name == key {
			return s, true
		}
	}

	return UserYearStat{}, false
}

// busiest month index; ties resolve to the earliest month
func busiestMonth(counts [12]int) (int, bool) {
	best, bestCount := 0, 0

	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}

	if bestCount == 0 {
		return 0, false
	}

	return best, true
}

// picks the highest-count entry from a histogram; ties resolve to the
// lexicographically smallest name so the result is deterministic
func topByCount(counts map[string]int) (NameCount, bool) {
	var best NameCount
	found := false

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if counts[k] > best.Count {
			best = NameCount{Name: k, Count: counts[k]}
			found = true
		}
	}

	return best, found
}

func topArtistsByPosition(positions map[string]map[string]*artistTally) PositionBreakdown {
	var breakdown PositionBreakdown

	pick := func(position string) *ArtistCount {
		byArtist, ok := positions[position]
		if !ok || len(byArtist) == 0 {
			return nil
		}

		names := make([]string, 0, len(byArtist))
		for name := range byArtist {
			names = append(names, name)
		}
		sort.Strings(names)

		var best *ArtistCount
		for _, name := range names {
			tally := byArtist[name]
			if best == nil || tally.count > best.Count {
				best = &ArtistCount{Name: name, Count: tally.count, ImageURL: tally.image}
			}
		}

		return best
	}

	breakdown.Headliner = pick(shows.PositionHeadliner)
	breakdown.Support = pick(shows.PositionSupport)
	breakdown.Local = pick(shows.PositionLocal)

	return breakdown
}

func sortedDates(set map[time.Time]struct{}) []time.Time {
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates
}

func maxOf(values []int) int {
	best := 0
	for _, v := range values {
		if v > best {
			best = v
		}
	}

	return best
}
