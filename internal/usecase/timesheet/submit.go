package timesheet

import (
	"context"
	"strconv"
	"time"

	"github.com/rensdev/urenregistratie-api/internal/audit"
	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

// --------- Input ---------

type SubmitRegistrationInput struct {
	UserID     string
	WeekNumber string
	Days       models.WeekDays
	Remarks    string
	CreatedAt  time.Time
}

// --------- Use case ---------

type SubmitRegistration struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitRegistration(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitRegistration {
	return &SubmitRegistration{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the submitted week, derives the totals server-side
// (client-computed totals are never trusted) and appends the record to
// the store. The returned record includes every store-assigned field.
func (uc *SubmitRegistration) Execute(
	ctx context.Context,
	in SubmitRegistrationInput,
) (*models.WeekRecord, error) {

	weekNumber, err := strconv.Atoi(in.WeekNumber)
	if err != nil || weekNumber <= 0 {
		return nil, &domain.ValidationError{Message: "weeknummer is ongeldig"}
	}

	if ok, fields := domain.IsCompleteWeek(in.Days); !ok {
		return nil, &domain.ValidationError{
			Message: "week is niet volledig ingevuld",
			Fields:  fields,
		}
	}

	if len(in.Remarks) > domain.MaxRemarksLength {
		return nil, &domain.ValidationError{
			Message: "opmerkingen zijn te lang (max 250 tekens)",
		}
	}

	totals := domain.ComputeWeekTotals(in.Days)

	rec := &models.WeekRecord{
		UserID:         in.UserID,
		WeekNumber:     weekNumber,
		Days:           in.Days,
		Remarks:        in.Remarks,
		TotalHours:     totals.HoursWorked,
		OverUnderHours: totals.OverUnder,
		CreatedAt:      in.CreatedAt,
	}

	if err := uc.repo.Append(ctx, rec); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   rec.UserID,
			Action:   "timesheet.submitted",
			Entity:   "week_record",
			EntityID: rec.ID,
			Metadata: map[string]any{
				"weekNumber": rec.WeekNumber,
				"year":       rec.Year,
				"totalHours": rec.TotalHours,
			},
		})
	}

	return rec, nil
}
