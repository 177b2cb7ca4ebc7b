package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
	}

	for n, want := range cases {
		assert.Equal(t, want, ordinal(n), "ordinal(%d)", n)
	}
}

func TestTotalShowsCopy_Bands(t *testing.T) {
	assert.Equal(t, "A quiet year on the show front", totalShowsCopy(0).Headline)
	assert.Equal(t, "You made it out to 1 show", totalShowsCopy(1).Headline)
	assert.Equal(t, "You made it out to 4 shows", totalShowsCopy(4).Headline)
	assert.Equal(t, "Quality over quantity", totalShowsCopy(4).Subtext)
	assert.Equal(t, "That's a solid run", totalShowsCopy(11).Subtext)
	assert.Equal(t, "You basically lived at the venue", totalShowsCopy(29).Subtext)
	assert.Equal(t, "Certified road warrior", totalShowsCopy(30).Subtext)
}

func TestTotalShowsCopy_NeverHarsh(t *testing.T) {
	// low counts get a warm framing, never a demeaning one
	for _, n := range []int{0, 1, 2} {
		c := totalShowsCopy(n)
		assert.NotContains(t, c.Headline, "only")
		assert.NotContains(t, c.Subtext, "only")
	}
}

func TestAvgPerMonthCopy(t *testing.T) {
	assert.Equal(t, "0.3 shows per month on average", avgPerMonthCopy(4.0/12).Headline)
	assert.Equal(t, "Every one counted", avgPerMonthCopy(0.3).Subtext)
	assert.Equal(t, "A show most months", avgPerMonthCopy(0.8).Subtext)
	assert.Equal(t, "A steady habit", avgPerMonthCopy(1.5).Subtext)
	assert.Equal(t, "Relentless", avgPerMonthCopy(2.5).Subtext)
}

func TestRankCopy(t *testing.T) {
	first := rankCopy(1, 8)
	assert.Equal(t, "1st of 8", first.Headline)
	assert.Equal(t, "Top of the leaderboard", first.Subtext)
	assert.Equal(t, "Ranked 1st out of 8 attendees", first.Footer)

	assert.Equal(t, "Podium finish", rankCopy(3, 8).Subtext)
	assert.Equal(t, "Upper half of the crew", rankCopy(4, 8).Subtext)
	assert.Equal(t, "Right in the mix", rankCopy(7, 8).Subtext)
}

func TestIntroCopy(t *testing.T) {
	assert.Equal(t, "Your 2024 in live music", introCopy(2024, "Alice").Title)
	assert.Equal(t, "The crew's 2024 in live music", introCopy(2024, "").Title)
}

func TestOutroCopy(t *testing.T) {
	assert.Equal(t, "5 shows and counting", outroCopy(2024, 5).Subtext)
	assert.Equal(t, "1 show and counting", outroCopy(2024, 1).Subtext)
	assert.Equal(t, "Next year's lineup is wide open", outroCopy(2024, 0).Subtext)
}
