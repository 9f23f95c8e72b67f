package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonContains(t *testing.T) {
	at := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	plain := Season{Name: "Summer", StartMonth: 7, StartDay: 1, EndMonth: 9, EndDay: 30}
	wrap := Season{Name: "Academic Year", StartMonth: 10, StartDay: 1, EndMonth: 6, EndDay: 30}
	oneDay := Season{Name: "Spike", StartMonth: 8, StartDay: 15, EndMonth: 8, EndDay: 15}

	tests := []struct {
		name   string
		season Season
		day    time.Time
		want   bool
	}{
		{"inside plain range", plain, at(2025, time.August, 10), true},
		{"plain range start inclusive", plain, at(2025, time.July, 1), true},
		{"plain range end inclusive", plain, at(2025, time.September, 30), true},
		{"before plain range", plain, at(2025, time.June, 30), false},
		{"after plain range", plain, at(2025, time.October, 1), false},
		{"wrap matches after start", wrap, at(2025, time.November, 15), true},
		{"wrap matches before end", wrap, at(2026, time.March, 1), true},
		{"wrap end inclusive", wrap, at(2026, time.June, 30), true},
		{"wrap excludes the gap", wrap, at(2026, time.August, 1), false},
		{"equal boundaries match that day only", oneDay, at(2025, time.August, 15), true},
		{"equal boundaries exclude other days", oneDay, at(2025, time.August, 16), false},
		{"timestamp within day still matches", plain, time.Date(2025, time.August, 10, 17, 30, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.season.Contains(tt.day))
		})
	}
}
