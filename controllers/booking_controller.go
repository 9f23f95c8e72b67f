// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"accommodation-backend/models"
	"accommodation-backend/services"
	"accommodation-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type QuoteRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests"`
}

type BookingRequest struct {
	QuoteRequest
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	University string `json:"university"`
	Phone      string `json:"phone"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func (q QuoteRequest) toStayRequest() services.StayRequest {
	guests := q.Guests
	if guests == 0 {
		guests = 1
	}
	return services.StayRequest{
		RoomID:   q.RoomID,
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Guests:   guests,
	}
}

// respondStayError maps service validation errors onto HTTP statuses.
func respondStayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room not found")
	case errors.Is(err, utils.ErrInvalidDate):
		utils.JSONError(c, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
	case errors.Is(err, services.ErrInvalidGuests):
		utils.JSONError(c, http.StatusBadRequest, "Invalid number of guests for this room")
	default:
		log.Printf("❌ Stay request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal error")
	}
}

// ----------------------------------------------------
// 1. Quote a stay (POST /api/quote)
// ----------------------------------------------------

func (ctrl *BookingController) GetQuote(c *gin.Context) {
	var payload QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	quote, err := ctrl.BookingSvc.GetQuote(payload.toStayRequest())
	if err != nil {
		respondStayError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ----------------------------------------------------
// 2. Create Booking (POST /api/bookings)
// ----------------------------------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	student := models.Student{
		Name:       payload.Name,
		Email:      payload.Email,
		University: payload.University,
		Phone:      payload.Phone,
	}

	booking, err := ctrl.BookingSvc.CreateBooking(payload.toStayRequest(), student)
	if err != nil {
		respondStayError(c, err)
		return
	}

	log.Printf("✅ Booking %d created (ref %s, total %.2f %s)",
		booking.ID, booking.ReferenceCode, booking.TotalPrice, booking.Currency)

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":     booking.ID,
		"reference_code": booking.ReferenceCode,
		"total_price":    booking.TotalPrice,
		"currency":       booking.Currency,
		"status":         booking.Status,
	})
}

// ----------------------------------------------------
// 3. List recent bookings (GET /api/bookings?limit=50)
// ----------------------------------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = parsed
	}

	bookings, err := ctrl.BookingSvc.GetRecent(limit)
	if err != nil {
		log.Printf("❌ Failed to list bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
