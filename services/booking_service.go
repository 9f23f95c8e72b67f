// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"accommodation-backend/models"
	"accommodation-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const bookingCurrency = "EUR"

var (
	ErrRoomNotFound     = errors.New("room_not_found")
	ErrInvalidDateRange = errors.New("invalid_date_range")
	ErrInvalidGuests    = errors.New("invalid_guests")
)

// StayRequest is the validated-shape input for quotes and bookings.
// Dates come in as YYYY-MM-DD strings straight from the payload.
type StayRequest struct {
	RoomID   uint
	CheckIn  string
	CheckOut string
	Guests   int
}

// Quote is the priced echo of a stay request. Nothing is persisted for a quote.
type Quote struct {
	RoomID     uint    `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
	Currency   string  `json:"currency"`
}

// BookingService validates stay requests, prices them and persists bookings.
type BookingService struct {
	DB      *gorm.DB
	Pricing *PricingService
	Seasons *SeasonService
	Rooms   *RoomService
}

func NewBookingService(db *gorm.DB, pricing *PricingService, seasons *SeasonService, rooms *RoomService) *BookingService {
	return &BookingService{DB: db, Pricing: pricing, Seasons: seasons, Rooms: rooms}
}

// resolveStay runs the full validation chain and returns the room plus parsed
// dates. Every failure here must short-circuit before pricing is attempted.
func (s *BookingService) resolveStay(req StayRequest) (models.Room, time.Time, time.Time, error) {
	var zeroTime time.Time

	room, err := s.Rooms.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, zeroTime, zeroTime, ErrRoomNotFound
		}
		return models.Room{}, zeroTime, zeroTime, fmt.Errorf("failed to load room: %w", err)
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return models.Room{}, zeroTime, zeroTime, err
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return models.Room{}, zeroTime, zeroTime, err
	}

	if err := ValidateStay(room, checkIn, checkOut, req.Guests); err != nil {
		return models.Room{}, zeroTime, zeroTime, err
	}
	return room, checkIn, checkOut, nil
}

// ValidateStay enforces the caller-side contract of the pricing engine:
// check_out after check_in (zero-night stays rejected) and guests within
// [1, capacity]. The engine itself never re-checks these.
func ValidateStay(room models.Room, checkIn, checkOut time.Time, guests int) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	capacity := room.Capacity
	if capacity < 1 {
		capacity = 1
	}
	if guests < 1 || guests > capacity {
		return ErrInvalidGuests
	}
	return nil
}

// GetQuote prices a stay without persisting anything.
func (s *BookingService) GetQuote(req StayRequest) (Quote, error) {
	room, checkIn, checkOut, err := s.resolveStay(req)
	if err != nil {
		return Quote{}, err
	}

	seasons, err := s.Seasons.GetAll()
	if err != nil {
		return Quote{}, fmt.Errorf("failed to load seasons: %w", err)
	}

	total := s.Pricing.PriceStay(room, checkIn, checkOut, seasons)
	return Quote{
		RoomID:     req.RoomID,
		CheckIn:    checkIn.Format(utils.DateLayout),
		CheckOut:   checkOut.Format(utils.DateLayout),
		Guests:     req.Guests,
		TotalPrice: total,
		Currency:   bookingCurrency,
	}, nil
}

// CreateBooking validates, prices and persists a confirmed booking.
// Seasons are read at booking time; earlier bookings keep the total they
// were priced with. No overlap check against existing bookings is done.
func (s *BookingService) CreateBooking(req StayRequest, student models.Student) (models.Booking, error) {
	room, checkIn, checkOut, err := s.resolveStay(req)
	if err != nil {
		return models.Booking{}, err
	}

	seasons, err := s.Seasons.GetAll()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load seasons: %w", err)
	}
	total := s.Pricing.PriceStay(room, checkIn, checkOut, seasons)

	studentJSON, err := json.Marshal(student)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to encode student info: %w", err)
	}

	booking := models.Booking{
		RoomID:        room.ID,
		ReferenceCode: uuid.NewString(),
		Status:        models.BookingStatusConfirmed,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalPrice:    total,
		Currency:      bookingCurrency,
		Student:       datatypes.JSON(studentJSON),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetRecent returns the newest bookings first. Limit is clamped to [1, 200]
// with a default of 50, matching the public listing behavior.
func (s *BookingService) GetRecent(limit int) ([]models.Booking, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	var bookings []models.Booking
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}
