package story

import "fmt"

// Copy is a tone-consistent text fragment for one slide. The copy
// functions are pure: same inputs, same text. Threshold bands are
// monotonic and cover every non-negative input, and low counts always
// get a warm framing, never a demeaning one.
type Copy struct {
	Title    string
	Headline string
	Subtext  string
}

// ranking copy carries an extra footer line
type RankedCopy struct {
	Copy
	Footer string
}

func introCopy(year int, displayName string) Copy {
	title := fmt.Sprintf("Your %d in live music", year)
	if displayName == "" {
		title = fmt.Sprintf("The crew's %d in live music", year)
	}

	return Copy{
		Title:    title,
		Headline: "Let's look back at the year",
		Subtext:  "Tap through for the highlights",
	}
}

func totalShowsCopy(n int) Copy {
	c := Copy{Title: "Shows attended"}

	switch {
	case n == 0:
		c.Headline = "A quiet year on the show front"
		c.Subtext = "The best nights are still ahead"
	case n == 1:
		c.Headline = "You made it out to 1 show"
		c.Subtext = "One great night beats none"
	case n < 5:
		c.Headline = fmt.Sprintf("You made it out to %d shows", n)
		c.Subtext = "Quality over quantity"
	case n < 12:
		c.Headline = fmt.Sprintf("%d shows this year", n)
		c.Subtext = "That's a solid run"
	case n < 30:
		c.Headline = fmt.Sprintf("%d shows this year", n)
		c.Subtext = "You basically lived at the venue"
	default:
		c.Headline = fmt.Sprintf("%d shows this year", n)
		c.Subtext = "Certified road warrior"
	}

	return c
}

func avgPerMonthCopy(avg float64) Copy {
	c := Copy{
		Title:    "Monthly pace",
		Headline: fmt.Sprintf("%.1f shows per month on average", avg),
	}

	switch {
	case avg < 0.5:
		c.Subtext = "Every one counted"
	case avg < 1:
		c.Subtext = "A show most months"
	case avg < 2:
		c.Subtext = "A steady habit"
	default:
		c.Subtext = "Relentless"
	}

	return c
}

func busiestMonthCopy(name string, count int) Copy {
	return Copy{
		Title:    "Busiest month",
		Headline: name,
		Subtext:  fmt.Sprintf("%d %s in one month", count, pluralShows(count)),
	}
}

func topVenueCopy(name string, count int) Copy {
	return Copy{
		Title:    "Home turf",
		Headline: name,
		Subtext:  fmt.Sprintf("You were there %d %s", count, pluralTimes(count)),
	}
}

func rankCopy(rank, total int) RankedCopy {
	c := RankedCopy{
		Copy: Copy{
			Title:    "Where you landed",
			Headline: fmt.Sprintf("%s of %d", ordinal(rank), total),
		},
		Footer: fmt.Sprintf("Ranked %s out of %d attendees", ordinal(rank), total),
	}

	switch {
	case rank == 1:
		c.Subtext = "Top of the leaderboard"
	case rank <= 3:
		c.Subtext = "Podium finish"
	case rank*2 <= total:
		c.Subtext = "Upper half of the crew"
	default:
		c.Subtext = "Right in the mix"
	}

	return c
}

func outroCopy(year, n int) Copy {
	c := Copy{
		Title:    fmt.Sprintf("That was %d", year),
		Headline: "See you up front next year",
	}

	if n > 0 {
		c.Subtext = fmt.Sprintf("%d %s and counting", n, pluralShows(n))
	} else {
		c.Subtext = "Next year's lineup is wide open"
	}

	return c
}

// 1 -> "1st", 2 -> "2nd", 11 -> "11th", 22 -> "22nd"
func ordinal(n int) string {
	suffix := "th"

	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

func pluralShows(n int) string {
	if n == 1 {
		return "show"
	}

	return "shows"
}

func pluralTimes(n int) string {
	if n == 1 {
		return "time"
	}

	return "times"
}
