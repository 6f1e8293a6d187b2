package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/httpresp"
	"github.com/pawsclinic/clinic-scheduler/internal/middleware"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	httpresp.OK(c, user)
}
