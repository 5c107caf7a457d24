package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/database"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbState := "up"
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		dbState = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbState,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
