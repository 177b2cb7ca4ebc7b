package story

import (
	"fmt"
	"strings"

	"codeberg.org/encore/server/internal/recap"
)

// ShareText renders the viewer's personal recap as a single plain-text
// block for clipboard copy and native share. The line format is stable
// and tested against exact output:
//
//	🎤 <year> Concert Recap — <displayName>
//	<blank>
//	🎵 I went to N shows (avg X.X/month)
//	📅 Busiest month: <name>                (omitted when absent)
//	🏟️ Top venue: <name>                   (omitted when absent)
//	🏆 Ranked <ordinal> out of <total> attendees
//
// Pure function of the recap data and the viewing user.
func ShareText(data *recap.RecapData, viewer string) string {
	displayName := strings.TrimSpace(viewer)
	totalShows := 0

	if data.PersonalSummary != nil {
		totalShows = data.PersonalSummary.TotalShows
	}

	viewerKey := recap.NormalizeName(viewer)
	rank := 0

	for i, entry := range data.Leaderboard {
		if entry.Name == viewerKey {
			rank = i + 1
			displayName = entry.DisplayName
			break
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🎤 %d Concert Recap — %s\n", data.Year, displayName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "🎵 I went to %d shows (avg %.1f/month)\n", totalShows, float64(totalShows)/12)

	if data.PersonalSummary != nil && data.PersonalSummary.BusiestMonthName != "" {
		fmt.Fprintf(&b, "📅 Busiest month: %s\n", data.PersonalSummary.BusiestMonthName)
	}

	if data.PersonalSummary != nil && data.PersonalSummary.TopVenue != "" {
		fmt.Fprintf(&b, "🏟️ Top venue: %s\n", data.PersonalSummary.TopVenue)
	}

	if rank > 0 {
		fmt.Fprintf(&b, "🏆 Ranked %s out of %d attendees\n", ordinal(rank), len(data.Leaderboard))
	}

	return b.String()
}
