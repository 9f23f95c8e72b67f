// controllers/system_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemController struct {
	DB *gorm.DB
}

func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{DB: db}
}

// Root (GET /) - service banner
func (ctrl *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Malta Student Accommodation API"})
}

// DBStatus (GET /api/system/db) - connectivity report for ops checks
func (ctrl *SystemController) DBStatus(c *gin.Context) {
	status := gin.H{
		"backend":  "running",
		"database": "not_connected",
		"tables":   []string{},
	}

	if ctrl.DB == nil {
		c.JSON(http.StatusOK, status)
		return
	}

	sqlDB, err := ctrl.DB.DB()
	if err != nil {
		status["database"] = "error"
		status["error"] = err.Error()
		c.JSON(http.StatusOK, status)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		status["database"] = "error"
		status["error"] = err.Error()
		c.JSON(http.StatusOK, status)
		return
	}

	status["database"] = "connected"
	if tables, err := ctrl.DB.Migrator().GetTables(); err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		status["tables"] = tables
	}

	c.JSON(http.StatusOK, status)
}
