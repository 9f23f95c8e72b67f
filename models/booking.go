package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Student is the contact snapshot stored on the booking row (JSON column).
type Student struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID        uint   `gorm:"column:room_id;index" json:"room_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	Status        string `gorm:"column:status;size:64" json:"status"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`
	Guests   int       `gorm:"column:guests;default:1" json:"guests"`

	TotalPrice float64 `gorm:"column:total_price" json:"total_price"`
	Currency   string  `gorm:"column:currency;size:8" json:"currency"`

	Student datatypes.JSON `gorm:"column:student" json:"student,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
