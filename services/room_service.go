// services/room_service.go
package services

import (
	"errors"
	"strings"

	"accommodation-backend/models"

	"gorm.io/gorm"
)

var (
	ErrRoomNameRequired  = errors.New("room_name_required")
	ErrInvalidCapacity   = errors.New("invalid_capacity")
	ErrInvalidMultiplier = errors.New("invalid_multiplier")
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}

func (s *RoomService) Create(room *models.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return ErrRoomNameRequired
	}
	if room.Capacity < 1 {
		return ErrInvalidCapacity
	}
	// Multiplier 0 is allowed and means "use the pricing default".
	if room.Multiplier < 0 {
		return ErrInvalidMultiplier
	}
	return s.DB.Create(room).Error
}
