package recap

import (
	"sort"
	"time"

	"codeberg.org/encore/server/encore/shows"
)

// builds the extended stats block by folding over per-user stats and
// the raw rows. Group attendance sums per-user totals without
// deduplication (a show with 5 attendees counts 5 times); the distinct
// show count is tracked separately.
func (a *Aggregator) buildStats(rows []shows.ShowWithRSVPs, stats []UserYearStat, leaderboard []LeaderboardEntry, viewerKey string) *Stats {
	result := &Stats{}

	if viewer, ok := lookupStat(stats, viewerKey); ok {
		result.PersonalTotalShows = viewer.TotalShows
		result.PersonalMonthlyCounts = viewer.MonthlyCounts
		result.PersonalFirstShow = viewer.FirstShow
		result.PersonalLastShow = viewer.LastShow
		result.PersonalLongestGapDays = viewer.LongestGapDays
		result.PersonalBackToBackNights = viewer.BackToBackNights
		result.PersonalMonthStreak = viewer.MonthStreak
		result.PersonalMostCommonDay = viewer.MostCommonDay
		result.PersonalTopVenues = topVenues(viewer.VenueCounts, 5)
		result.PersonalTopArtistsByPosition = viewer.TopArtistsByPosition
	}

	attendees := attendeesPerShow(rows)

	for _, s := range stats {
		result.GroupTotalAttendance += s.TotalShows
	}

	result.GroupDistinctShows = len(attendees)
	result.GroupMostPeopleInOneShow = mostPeopleInOneShow(rows, attendees)
	result.GroupMostSoloShows = mostSoloShows(rows, attendees, stats)

	if len(leaderboard) > 0 {
		result.GroupMostActiveUser = &NameCount{
			Name:  leaderboard[0].DisplayName,
			Count: leaderboard[0].TotalShows,
		}
	}

	result.GroupBusiestMonth = groupBusiestMonth(stats)
	result.GroupTopVenue = groupTopVenue(stats)

	byArtist, byPosition := groupArtistTallies(rows)
	if top, ok := topByCount(byArtist); ok {
		result.GroupTopArtist = &top
	}
	result.GroupTopArtistsByPosition = topArtistsByPosition(byPosition)

	return result
}

// number of distinct going attendees per show id
func attendeesPerShow(rows []shows.ShowWithRSVPs) map[string]int {
	counts := make(map[string]int)

	for i := range rows {
		seen := make(map[string]struct{})

		for _, rsvp := range rows[i].RSVPs {
			if rsvp.Status != shows.StatusGoing {
				continue
			}

			key := NormalizeName(rsvp.Name)
			if key == "" {
				continue
			}

			seen[key] = struct{}{}
		}

		if len(seen) > 0 {
			counts[rows[i].ID] = len(seen)
		}
	}

	return counts
}

// the show with the highest attendee count; ties resolve to the
// earliest show date, then id
func mostPeopleInOneShow(rows []shows.ShowWithRSVPs, attendees map[string]int) *ShowCount {
	ordered := make([]shows.ShowWithRSVPs, len(rows))
	copy(ordered, rows)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].DateTime.Equal(ordered[j].DateTime) {
			return ordered[i].DateTime.Before(ordered[j].DateTime)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var best *ShowCount

	for i := range ordered {
		count := attendees[ordered[i].ID]
		if count == 0 {
			continue
		}

		if best == nil || count > best.Count {
			best = &ShowCount{ShowID: ordered[i].ID, Title: ordered[i].Title, Count: count}
		}
	}

	return best
}

// the user who attended the most shows alone
func mostSoloShows(rows []shows.ShowWithRSVPs, attendees map[string]int, stats []UserYearStat) *NameCount {
	solo := make(map[string]int)

	for i := range rows {
		if attendees[rows[i].ID] != 1 {
			continue
		}

		for _, rsvp := range rows[i].RSVPs {
			if rsvp.Status != shows.StatusGoing {
				continue
			}

			if key := NormalizeName(rsvp.Name); key != "" {
				solo[key]++
				break
			}
		}
	}

	top, ok := topByCount(solo)
	if !ok {
		return nil
	}

	// report with display casing
	for _, s := range stats {
		if s.Name == top.Name {
			top.Name = s.DisplayName
			break
		}
	}

	return &top
}

func groupBusiestMonth(stats []UserYearStat) *MonthCount {
	var totals [12]int

	for _, s := range stats {
		for i, c := range s.MonthlyCounts {
			totals[i] += c
		}
	}

	month, ok := busiestMonth(totals)
	if !ok {
		return nil
	}

	return &MonthCount{
		Month: month,
		Name:  time.Month(month + 1).String(),
		Count: totals[month],
	}
}

// a user's venues ranked by visit count desc, then name asc
func topVenues(counts map[string]int, limit int) []NameCount {
	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func groupTopVenue(stats []UserYearStat) *NameCount {
	venues := make(map[string]int)

	for _, s := range stats {
		for venue, count := range s.VenueCounts {
			venues[venue] += count
		}
	}

	top, ok := topByCount(venues)
	if !ok {
		return nil
	}

	return &top
}

// per-artist attendance tallies across the group: each going attendee
// of a show contributes one to every artist billed on it
func groupArtistTallies(rows []shows.ShowWithRSVPs) (map[string]int, map[string]map[string]*artistTally) {
	byArtist := make(map[string]int)
	byPosition := make(map[string]map[string]*artistTally)

	attendees := attendeesPerShow(rows)

	for i := range rows {
		count := attendees[rows[i].ID]
		if count == 0 {
			continue
		}

		for _, artist := range rows[i].Artists {
			byArtist[artist.Name] += count

			tallies, ok := byPosition[artist.Position]
			if !ok {
				tallies = make(map[string]*artistTally)
				byPosition[artist.Position] = tallies
			}

			tally, ok := tallies[artist.Name]
			if !ok {
				tally = &artistTally{image: artist.ImageURL}
				tallies[artist.Name] = tally
			}
			tally.count += count
		}
	}

	return byArtist, byPosition
}
