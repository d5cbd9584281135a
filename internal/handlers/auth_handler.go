package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rensdev/urenregistratie-api/internal/config"
	"github.com/rensdev/urenregistratie-api/internal/dto"
	"github.com/rensdev/urenregistratie-api/internal/httperr"
	"github.com/rensdev/urenregistratie-api/internal/models"
	"github.com/rensdev/urenregistratie-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city" binding:"required"`
	Department string `json:"department" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Alle velden zijn verplicht.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "E-mailadres is al in gebruik.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "Het domein van het e-mailadres lijkt niet te bestaan.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Aanmaken van het account is mislukt.")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		PostalCode:   req.PostalCode,
		City:         req.City,
		Department:   req.Department,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Aanmaken van het account is mislukt.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account succesvol aangemaakt."})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Email en wachtwoord zijn verplicht.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.BadRequest(c, "Gebruiker niet gevonden.")
			return
		}
		httperr.Internal(c, "Inloggen is mislukt.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "Wachtwoord is incorrect.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Inloggen is mislukt.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inloggen succesvol.",
		"user":    dto.FromUser(user),
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"department": user.Department,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
