package models

import (
	"time"

	"gorm.io/gorm"
)

// Season เป็นช่วงราคาที่วนซ้ำทุกปี (เก็บเป็น month/day ไม่ผูกกับปีใดปีหนึ่ง)
// A range whose end falls before its start wraps the new year (e.g. Oct 1 - Jun 30).
type Season struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string  `json:"name" gorm:"type:varchar(100)"`
	StartMonth int     `json:"start_month" gorm:"column:start_month"`
	StartDay   int     `json:"start_day" gorm:"column:start_day"`
	EndMonth   int     `json:"end_month" gorm:"column:end_month"`
	EndDay     int     `json:"end_day" gorm:"column:end_day"`
	Rate       float64 `json:"rate" gorm:"column:rate"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Contains reports whether the recurring range covers day d, substituting
// d's year into the month/day boundaries. End strictly before start means
// the range wraps the year end; an equal boundary is a one-day season.
// Intentional wraps and data-entry mistakes look the same here, so no guessing.
func (s Season) Contains(d time.Time) bool {
	start := time.Date(d.Year(), time.Month(s.StartMonth), s.StartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(d.Year(), time.Month(s.EndMonth), s.EndDay, 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		// Wraps year end
		return !day.Before(start) || !day.After(end)
	}
	return !day.Before(start) && !day.After(end)
}
