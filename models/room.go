package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	Name        string `json:"name" gorm:"type:varchar(100)"`
	Description string `json:"description" gorm:"type:text"`

	// Capacity = max guests for the unit (>= 1)
	Capacity int `json:"capacity" gorm:"column:capacity;default:1"`

	// Multiplier scales the season base rate (private room 1.0, entire place 1.4).
	// 0 means "not set"; pricing applies its default instead.
	Multiplier float64 `json:"multiplier" gorm:"column:multiplier"`
}
