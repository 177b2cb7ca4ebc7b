package recap

import "time"

const dateLayout = "2006-01-02"

// longest gap in days between consecutive attended dates.
// dates must be sorted ascending UTC midnights; zero for fewer than two dates.
func longestGapDays(dates []time.Time) int {
	longest := 0

	for i := 1; i < len(dates); i++ {
		gap := int(dates[i].Sub(dates[i-1]) / (24 * time.Hour))
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// counts adjacent date pairs exactly one calendar day apart, keeping a
// few example pairs for display
func backToBackNights(dates []time.Time) BackToBackNights {
	var result BackToBackNights

	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) != 24*time.Hour {
			continue
		}

		result.Count++

		if len(result.Examples) < maxBackToBackExamples {
			result.Examples = append(result.Examples, [2]string{
				dates[i-1].Format(dateLayout),
				dates[i].Format(dateLayout),
			})
		}
	}

	return result
}

// longest run of consecutive calendar months with at least one show
func monthStreak(monthly [12]int) int {
	longest, run := 0, 0

	for _, count := range monthly {
		if count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	return longest
}

// weekday with the highest attendance count; ties resolve to the
// earliest weekday (Sunday first, matching time.Weekday ordering)
func mostCommonDay(weekdays [7]int) string {
	best, bestCount := 0, 0

	for i, c := range weekdays {
		if c > bestCount {
			best, bestCount = i, c
		}
	}

	if bestCount == 0 {
		return ""
	}

	return time.Weekday(best).String()
}
