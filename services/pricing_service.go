// services/pricing_service.go
package services

import (
	"math"
	"time"

	"accommodation-backend/models"
)

// DefaultMultiplier is applied when a room has no multiplier set (zero value).
const DefaultMultiplier = 1.0

// PricingService computes stay totals from an explicit season snapshot.
// It is pure and stateless: no DB access, safe for concurrent use.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// PriceStay sums the nightly price for every day in [checkIn, checkOut).
// The check-out day itself is never charged. Caller guarantees checkIn < checkOut.
//
// Season matching is first-match in the order of the supplied slice; overlapping
// definitions resolve to whichever comes first, not the "best" one. A day no
// season covers contributes 0. Result is rounded to 2 decimal places (EUR).
func (s PricingService) PriceStay(room models.Room, checkIn, checkOut time.Time, seasons []models.Season) float64 {
	multiplier := effectiveMultiplier(room)

	total := 0.0
	for d := dateOnly(checkIn); d.Before(dateOnly(checkOut)); d = d.AddDate(0, 0, 1) {
		base := 0.0
		if season, ok := seasonForDay(d, seasons); ok {
			base = season.Rate
		}
		total += base * multiplier
	}
	return roundCurrency(total)
}

// seasonForDay returns the first season whose recurring range contains d.
func seasonForDay(d time.Time, seasons []models.Season) (models.Season, bool) {
	for _, season := range seasons {
		if season.Contains(d) {
			return season, true
		}
	}
	return models.Season{}, false
}

func effectiveMultiplier(room models.Room) float64 {
	if room.Multiplier == 0 {
		return DefaultMultiplier
	}
	return room.Multiplier
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
