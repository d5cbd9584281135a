package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rensdev/urenregistratie-api/internal/httperr"
	"github.com/rensdev/urenregistratie-api/internal/httpresp"
	"github.com/rensdev/urenregistratie-api/internal/logging"
	"github.com/rensdev/urenregistratie-api/internal/mail"
)

type ContactHandler struct {
	mailer mail.Mailer
}

func NewContactHandler(mailer mail.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Message == "" {
		httperr.BadRequest(c, "Naam en bericht zijn verplicht.")
		return
	}

	body := fmt.Sprintf("Naam: %s\n\nBericht:\n%s", req.Name, req.Message)
	if err := h.mailer.Send("Nieuw bericht via contactformulier", body); err != nil {
		logging.Log.WithError(err).Error("failed to send contact mail")
		httperr.Internal(c, "Er is iets misgegaan bij het verzenden.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Bericht succesvol verzonden.")
}
