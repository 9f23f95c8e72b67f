// controllers/season_controller.go
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

type SeasonController struct {
	SeasonSvc *services.SeasonService
}

func NewSeasonController(svc *services.SeasonService) *SeasonController {
	return &SeasonController{SeasonSvc: svc}
}

// ----------------------------------------------------
// 1. Get Seasons (GET /api/seasons)
// ----------------------------------------------------

func (ctrl *SeasonController) GetSeasons(c *gin.Context) {
	seasons, err := ctrl.SeasonSvc.GetAll()
	if err != nil {
		log.Printf("❌ Failed to list seasons: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, seasons)
}

// ----------------------------------------------------
// 2. Create Season (POST /api/seasons)
// ----------------------------------------------------

func (ctrl *SeasonController) CreateSeason(c *gin.Context) {
	var season models.Season

	if err := c.ShouldBindJSON(&season); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.SeasonSvc.Create(&season); err != nil {
		switch {
		case errors.Is(err, services.ErrSeasonNameRequired):
			utils.JSONError(c, http.StatusBadRequest, "Season name is required.")
		case errors.Is(err, services.ErrInvalidSeasonRange):
			utils.JSONError(c, http.StatusBadRequest, "Season boundaries must be valid calendar days.")
		case errors.Is(err, services.ErrInvalidSeasonRate):
			utils.JSONError(c, http.StatusBadRequest, "Rate must not be negative.")
		default:
			log.Printf("❌ DB ERROR: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, season)
}
