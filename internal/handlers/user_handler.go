package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rensdev/urenregistratie-api/internal/dto"
	"github.com/rensdev/urenregistratie-api/internal/httperr"
	"github.com/rensdev/urenregistratie-api/internal/httpresp"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// List returns every registered user, without password hashes.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		httperr.Internal(c, "Laden van gebruikers is mislukt.")
		return
	}

	httpresp.OK(c, dto.FromUsers(users))
}
