package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rensdev/urenregistratie-api/internal/dto"
	"github.com/rensdev/urenregistratie-api/internal/httperr"
	"github.com/rensdev/urenregistratie-api/internal/httpresp"
	"github.com/rensdev/urenregistratie-api/internal/middleware"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "Geen gebruiker in de sessie.")
		return
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		httperr.Unauthorized(c, "Geen gebruiker in de sessie.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.Internal(c, "Gebruiker niet gevonden.")
		return
	}

	httpresp.OK(c, gin.H{"user": dto.FromUser(user)})
}
