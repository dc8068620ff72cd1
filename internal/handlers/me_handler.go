package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	staffID := middleware.StaffID(c)
	if staffID == nil {
		httperr.Unauthorized(c, "staff_not_in_context", "Authentication required.")
		return
	}

	var staff models.Staff
	if err := h.db.WithContext(c.Request.Context()).First(&staff, *staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "staff_not_found", "Account no longer exists.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"staff": staff})
}
