// services/pricing_service_test.go
package services

import (
	"testing"
	"time"

	"accommodation-backend/models"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Seed catalog from config.SeedDatabase, minus the Holiday season.
func academicSeasons() []models.Season {
	return []models.Season{
		{Name: "Academic Year", StartMonth: 10, StartDay: 1, EndMonth: 6, EndDay: 30, Rate: 45.0},
		{Name: "Summer", StartMonth: 7, StartDay: 1, EndMonth: 9, EndDay: 30, Rate: 35.0},
	}
}

func TestPriceStay_AcademicYearScenario(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Capacity: 4, Multiplier: 1.4}

	// 3 nights Nov 1-4, all in Academic Year: round(45.0 * 1.4 * 3, 2)
	total := svc.PriceStay(room, day(2025, time.November, 1), day(2025, time.November, 4), academicSeasons())
	assert.Equal(t, 189.00, total)
}

func TestPriceStay_NoSeasonsMeansZero(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.4}

	total := svc.PriceStay(room, day(2025, time.November, 1), day(2025, time.November, 10), nil)
	assert.Equal(t, 0.00, total)
}

func TestPriceStay_ExclusiveCheckout(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.0}

	// One-night stay prices exactly one day, even when the check-out day
	// falls in a different (pricier or cheaper) season.
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		{"one night inside season", day(2025, time.November, 1), day(2025, time.November, 2), 45.00},
		{"checkout day crosses into summer", day(2026, time.June, 30), day(2026, time.July, 1), 45.00},
		{"checkout day crosses into academic year", day(2025, time.September, 30), day(2025, time.October, 1), 35.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.PriceStay(room, tt.checkIn, tt.checkOut, academicSeasons())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceStay_Additivity(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.0}
	seasons := academicSeasons()

	d1 := day(2026, time.June, 28)
	d2 := day(2026, time.July, 2)
	d3 := day(2026, time.July, 5)

	whole := svc.PriceStay(room, d1, d3, seasons)
	parts := svc.PriceStay(room, d1, d2, seasons) + svc.PriceStay(room, d2, d3, seasons)
	assert.InDelta(t, whole, parts, 0.001)
}

func TestPriceStay_MultiplierScaling(t *testing.T) {
	svc := NewPricingService()
	seasons := academicSeasons()
	checkIn := day(2025, time.October, 10)
	checkOut := day(2025, time.October, 17)

	base := svc.PriceStay(models.Room{Multiplier: 1.0}, checkIn, checkOut, seasons)
	scaled := svc.PriceStay(models.Room{Multiplier: 1.4}, checkIn, checkOut, seasons)
	assert.InDelta(t, roundCurrency(base*1.4), scaled, 0.001)
}

func TestPriceStay_DefaultMultiplier(t *testing.T) {
	svc := NewPricingService()
	seasons := academicSeasons()
	checkIn := day(2025, time.November, 1)
	checkOut := day(2025, time.November, 4)

	// Zero multiplier means "not set" and must price like 1.0.
	unset := svc.PriceStay(models.Room{}, checkIn, checkOut, seasons)
	explicit := svc.PriceStay(models.Room{Multiplier: 1.0}, checkIn, checkOut, seasons)
	assert.Equal(t, explicit, unset)
	assert.Equal(t, 135.00, unset)
}

func TestPriceStay_UncoveredDaysContributeZero(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.0}
	// Only summer is defined; the engine degrades silently outside it.
	seasons := []models.Season{
		{Name: "Summer", StartMonth: 7, StartDay: 1, EndMonth: 9, EndDay: 30, Rate: 35.0},
	}

	// Jun 29 and Jun 30 uncovered, Jul 1 and Jul 2 covered.
	total := svc.PriceStay(room, day(2026, time.June, 29), day(2026, time.July, 3), seasons)
	assert.Equal(t, 70.00, total)
}

func TestPriceStay_FirstMatchTieBreak(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.0}
	checkIn := day(2025, time.November, 1)
	checkOut := day(2025, time.November, 2)

	a := models.Season{Name: "A", StartMonth: 10, StartDay: 1, EndMonth: 12, EndDay: 31, Rate: 40.0}
	b := models.Season{Name: "B", StartMonth: 11, StartDay: 1, EndMonth: 11, EndDay: 30, Rate: 60.0}

	// Whichever season comes first in the slice wins, no best-match logic.
	assert.Equal(t, 40.00, svc.PriceStay(room, checkIn, checkOut, []models.Season{a, b}))
	assert.Equal(t, 60.00, svc.PriceStay(room, checkIn, checkOut, []models.Season{b, a}))
}

func TestSeasonForDay_YearWrap(t *testing.T) {
	wrap := models.Season{Name: "Winter Break", StartMonth: 12, StartDay: 20, EndMonth: 1, EndDay: 5, Rate: 50.0}
	seasons := []models.Season{wrap}

	_, ok := seasonForDay(day(2026, time.January, 2), seasons)
	assert.True(t, ok, "Jan 2 must match a Dec 20 - Jan 5 season")

	_, ok = seasonForDay(day(2026, time.June, 15), seasons)
	assert.False(t, ok, "Jun 15 must not match a Dec 20 - Jan 5 season")

	_, ok = seasonForDay(day(2025, time.December, 25), seasons)
	assert.True(t, ok, "Dec 25 must match a Dec 20 - Jan 5 season")
}

func TestPriceStay_MonotonicInStayLength(t *testing.T) {
	svc := NewPricingService()
	room := models.Room{Multiplier: 1.4}
	seasons := academicSeasons()
	checkIn := day(2026, time.June, 25)

	prev := 0.0
	for nights := 1; nights <= 14; nights++ {
		total := svc.PriceStay(room, checkIn, checkIn.AddDate(0, 0, nights), seasons)
		assert.GreaterOrEqual(t, total, prev, "nights=%d", nights)
		prev = total
	}
}
