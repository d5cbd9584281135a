package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/httperr"
	"github.com/rensdev/urenregistratie-api/internal/httpresp"
	"github.com/rensdev/urenregistratie-api/internal/logging"
	"github.com/rensdev/urenregistratie-api/internal/models"
	ucTimesheet "github.com/rensdev/urenregistratie-api/internal/usecase/timesheet"
)

type TimesheetHandler struct {
	submit *ucTimesheet.SubmitRegistration
	list   *ucTimesheet.ListRegistrations
}

func NewTimesheetHandler(
	submit *ucTimesheet.SubmitRegistration,
	list *ucTimesheet.ListRegistrations,
) *TimesheetHandler {
	return &TimesheetHandler{
		submit: submit,
		list:   list,
	}
}

// --------- Requests ---------

type RegistrationRequest struct {
	UserID     string          `json:"userId"`
	WeekNumber string          `json:"weekNumber"`
	Data       models.WeekDays `json:"data"`
	Remarks    string          `json:"remarks"`

	// The form sends its own derived totals; they are required on the
	// wire but re-derived server-side before storing.
	TotalHours     string `json:"totalHours"`
	OverUnderHours string `json:"overUnderHours"`

	CreatedAt string `json:"createdAt"`
}

// --------- Handlers ---------

// Create handles POST /urenregistratie.
func (h *TimesheetHandler) Create(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Ongeldige registratie.")
		return
	}

	if req.UserID == "" || req.WeekNumber == "" || req.Data == nil ||
		req.TotalHours == "" || req.CreatedAt == "" {
		httperr.BadRequest(c, "Ongeldige registratie.")
		return
	}

	createdAt, err := time.Parse(time.RFC3339, req.CreatedAt)
	if err != nil {
		httperr.BadRequest(c, "Ongeldige registratie.")
		return
	}

	_, err = h.submit.Execute(c.Request.Context(), ucTimesheet.SubmitRegistrationInput{
		UserID:     req.UserID,
		WeekNumber: req.WeekNumber,
		Days:       req.Data,
		Remarks:    req.Remarks,
		CreatedAt:  createdAt,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httperr.BadRequestFields(c, validationErr.Message, validationErr.Fields)
			return
		}

		logging.Log.WithError(err).Error("failed to store registration")
		httperr.Internal(c, "Opslaan van de registratie is mislukt.")
		return
	}

	httpresp.Created(c, "Urenregistratie succesvol opgeslagen.")
}

// List handles GET /urenregistraties, optionally filtered on userId.
func (h *TimesheetHandler) List(c *gin.Context) {
	userID := c.Query("userId")

	records, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		logging.Log.WithError(err).Error("failed to load registrations")
		httperr.Internal(c, "Laden van de registraties is mislukt.")
		return
	}

	httpresp.OK(c, records)
}
