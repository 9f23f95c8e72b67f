// controllers/room_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"accommodation-backend/models"
	"accommodation-backend/services"
	"accommodation-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		log.Printf("❌ Failed to list rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNameRequired):
			utils.JSONError(c, http.StatusBadRequest, "Room name is required.")
		case errors.Is(err, services.ErrInvalidCapacity):
			utils.JSONError(c, http.StatusBadRequest, "Capacity must be at least 1.")
		case errors.Is(err, services.ErrInvalidMultiplier):
			utils.JSONError(c, http.StatusBadRequest, "Multiplier must not be negative.")
		default:
			log.Printf("❌ DB ERROR: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, room)
}
