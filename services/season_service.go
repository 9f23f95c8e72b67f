// services/season_service.go
package services

import (
	"errors"
	"strings"

	"accommodation-backend/models"
	"accommodation-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidSeasonRange = errors.New("invalid_season_range")
	ErrInvalidSeasonRate  = errors.New("invalid_season_rate")
	ErrSeasonNameRequired = errors.New("season_name_required")
)

// SeasonService เป็น wrapper รอบ *gorm.DB สำหรับ season catalog
type SeasonService struct {
	DB *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db}
}

// GetAll returns every season ordered by id. Pricing is first-match over this
// slice, so the order must be stable across calls.
func (s *SeasonService) GetAll() ([]models.Season, error) {
	var seasons []models.Season
	err := s.DB.Order("id ASC").Find(&seasons).Error
	return seasons, err
}

// Create validates the month/day boundaries eagerly so a season that would
// produce impossible dates (e.g. Feb 31) never reaches the catalog.
func (s *SeasonService) Create(season *models.Season) error {
	if err := ValidateSeason(*season); err != nil {
		return err
	}
	season.Name = strings.TrimSpace(season.Name)
	return s.DB.Create(season).Error
}

func ValidateSeason(season models.Season) error {
	if strings.TrimSpace(season.Name) == "" {
		return ErrSeasonNameRequired
	}
	if !utils.ValidDayOfMonth(season.StartMonth, season.StartDay) {
		return ErrInvalidSeasonRange
	}
	if !utils.ValidDayOfMonth(season.EndMonth, season.EndDay) {
		return ErrInvalidSeasonRange
	}
	if season.Rate < 0 {
		return ErrInvalidSeasonRate
	}
	return nil
}
