package shows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecapYear(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{
			// a few hours into January 1st UTC is still December 31st
			// locally, so the show belongs to the previous recap year
			"early new year UTC is previous local year",
			time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC),
			2024,
		},
		{
			"past the local year boundary",
			time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC),
			2025,
		},
		{
			"mid-year is unaffected",
			time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC),
			2024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecapYear(tt.at, est))
		})
	}
}
